package ergast

// Upstream payloads arrive inside a nested MRData envelope. Every numeric
// field is a string on the wire; coercion happens in the importers so a
// malformed value degrades a single field, never the whole decode.

type envelope struct {
	MRData mrData `json:"MRData"`
}

type mrData struct {
	SeasonTable      *seasonTable      `json:"SeasonTable"`
	CircuitTable     *circuitTable     `json:"CircuitTable"`
	DriverTable      *driverTable      `json:"DriverTable"`
	ConstructorTable *constructorTable `json:"ConstructorTable"`
	RaceTable        *raceTable        `json:"RaceTable"`
	StandingsTable   *standingsTable   `json:"StandingsTable"`
}

type seasonTable struct {
	Seasons []Season `json:"Seasons"`
}

type circuitTable struct {
	Circuits []Circuit `json:"Circuits"`
}

type driverTable struct {
	Drivers []Driver `json:"Drivers"`
}

type constructorTable struct {
	Constructors []Constructor `json:"Constructors"`
}

type raceTable struct {
	Races []Race `json:"Races"`
}

type standingsTable struct {
	StandingsLists []StandingsList `json:"StandingsLists"`
}

type Season struct {
	Season string `json:"season"`
	URL    string `json:"url"`
}

type Location struct {
	Lat      string `json:"lat"`
	Long     string `json:"long"`
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type Circuit struct {
	CircuitID   string   `json:"circuitId"`
	CircuitName string   `json:"circuitName"`
	URL         string   `json:"url"`
	Location    Location `json:"Location"`
}

type Driver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
	URL             string `json:"url"`
}

type Constructor struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
	URL           string `json:"url"`
}

// SessionTime is a dated sub-session entry on a race record. Pointers on
// Race distinguish "key absent" from "key present but empty": practice-3
// gating depends on key presence alone.
type SessionTime struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Race struct {
	Season         string       `json:"season"`
	Round          string       `json:"round"`
	URL            string       `json:"url"`
	RaceName       string       `json:"raceName"`
	Circuit        Circuit      `json:"Circuit"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	FirstPractice  *SessionTime `json:"FirstPractice"`
	SecondPractice *SessionTime `json:"SecondPractice"`
	ThirdPractice  *SessionTime `json:"ThirdPractice"`
	Qualifying     *SessionTime `json:"Qualifying"`
	Sprint         *SessionTime `json:"Sprint"`

	QualifyingResults []QualifyingResult `json:"QualifyingResults"`
	SprintResults     []SessionResult    `json:"SprintResults"`
	Results           []SessionResult    `json:"Results"`
}

type QualifyingResult struct {
	Number      string      `json:"number"`
	Position    string      `json:"position"`
	Driver      Driver      `json:"Driver"`
	Constructor Constructor `json:"Constructor"`
	Q1          string      `json:"Q1"`
	Q2          string      `json:"Q2"`
	Q3          string      `json:"Q3"`
}

type ResultTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

// SessionResult covers both race and sprint classification rows; the two
// payloads share their shape.
type SessionResult struct {
	Number       string      `json:"number"`
	Position     string      `json:"position"`
	PositionText string      `json:"positionText"`
	Points       string      `json:"points"`
	Grid         string      `json:"grid"`
	Laps         string      `json:"laps"`
	Status       string      `json:"status"`
	Driver       Driver      `json:"Driver"`
	Constructor  Constructor `json:"Constructor"`
	Time         *ResultTime `json:"Time"`
}

type StandingsList struct {
	Season          string           `json:"season"`
	Round           string           `json:"round"`
	DriverStandings []DriverStanding `json:"DriverStandings"`
}

type DriverStanding struct {
	Position     string        `json:"position"`
	Points       string        `json:"points"`
	Wins         string        `json:"wins"`
	Driver       Driver        `json:"Driver"`
	Constructors []Constructor `json:"Constructors"`
}
