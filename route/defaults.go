package route

// DefaultPath is the Tandang Sora - Maharlika jeepney route polyline. The
// ordering follows the vehicle's direction of travel from the Tandang Sora
// Market terminal down to Maharlika St.
var DefaultPath = []Coordinate{
	{Lat: 14.66870, Lng: 121.05420}, // Tandang Sora Market (Commonwealth)
	{Lat: 14.66930, Lng: 121.05200},
	{Lat: 14.67010, Lng: 121.04950},
	{Lat: 14.67080, Lng: 121.04700},
	{Lat: 14.67140, Lng: 121.04490}, // Tandang Sora / Visayas Ave
	{Lat: 14.66900, Lng: 121.04560},
	{Lat: 14.66700, Lng: 121.04610},
	{Lat: 14.66480, Lng: 121.04680},
	{Lat: 14.66250, Lng: 121.04730}, // Visayas / Congressional
	{Lat: 14.66000, Lng: 121.04800},
	{Lat: 14.65800, Lng: 121.04850},
	{Lat: 14.65550, Lng: 121.04950},
	{Lat: 14.65340, Lng: 121.05030}, // Elliptical Rd
	{Lat: 14.65250, Lng: 121.05150},
	{Lat: 14.65200, Lng: 121.05280},
	{Lat: 14.65000, Lng: 121.05350}, // Exit to Kalayaan Ave
	{Lat: 14.64800, Lng: 121.05400},
	{Lat: 14.64600, Lng: 121.05550},
	{Lat: 14.64500, Lng: 121.05650},
	{Lat: 14.64400, Lng: 121.05800}, // QC City Hall / Housing
	{Lat: 14.64370, Lng: 121.05850}, // Maharlika St
}

// DefaultRoute returns the built-in Tandang Sora - Maharlika route with its
// standard stops. It is used whenever the store holds no route document or
// the stored document fails to decode.
func DefaultRoute() *Route {
	return &Route{
		ID:     "tandang-sora-maharlika",
		Name:   "Tandang Sora - Maharlika",
		Path:   append([]Coordinate(nil), DefaultPath...),
		Status: StatusActive,
		Stops: []Stop{
			{ID: "1", Name: "Tandang Sora Market", Coords: Coordinate{Lat: 14.6687, Lng: 121.0542}, Description: "Terminal at Commonwealth", IsTerminal: true},
			{ID: "2", Name: "Visayas Intersection", Coords: Coordinate{Lat: 14.6714, Lng: 121.0449}, Description: "Corner Tandang Sora & Visayas"},
			{ID: "3", Name: "Congressional Ave", Coords: Coordinate{Lat: 14.6625, Lng: 121.0473}, Description: "Sanville / Congressional Cross"},
			{ID: "4", Name: "QC City Hall / Kalayaan", Coords: Coordinate{Lat: 14.6480, Lng: 121.0540}, Description: "Kalayaan Avenue Drop-off"},
			{ID: "5", Name: "Maharlika", Coords: Coordinate{Lat: 14.6437, Lng: 121.0585}, Description: "End of Route (Maharlika St)", IsTerminal: true},
		},
	}
}
