// README: Default metro network table (red corridor plus blue/green stubs).
package station

// DefaultNetwork returns the ordered station table the service boots with.
// The red corridor comes first so its terminal keeps index 0; the blue and
// green segments follow in corridor order.
func DefaultNetwork() *Catalog {
	c, err := NewCatalog(defaultStations)
	if err != nil {
		// The table below is static; a bad entry is a programming error.
		panic(err)
	}
	return c
}

var defaultStations = []Station{
	{ID: "miyapur", Name: "Miyapur", Line: LineRed},
	{ID: "jntu", Name: "JNTU College", Line: LineRed},
	{ID: "kphb", Name: "KPHB Colony", Line: LineRed},
	{ID: "kukatpally", Name: "Kukatpally", Line: LineRed},
	{ID: "balanagar", Name: "Balanagar", Line: LineRed},
	{ID: "moosapet", Name: "Moosapet", Line: LineRed},
	{ID: "bharat-nagar", Name: "Bharat Nagar", Line: LineRed},
	{ID: "erragadda", Name: "Erragadda", Line: LineRed},
	{ID: "esi-hospital", Name: "ESI Hospital", Line: LineRed},
	{ID: "sr-nagar", Name: "S.R. Nagar", Line: LineRed},
	{ID: "ameerpet", Name: "Ameerpet", Line: LineInterchange},
	{ID: "punjagutta", Name: "Punjagutta", Line: LineRed},
	{ID: "irrum-manzil", Name: "Irrum Manzil", Line: LineRed},
	{ID: "khairatabad", Name: "Khairatabad", Line: LineRed},
	{ID: "lakdi-ka-pul", Name: "Lakdi-ka-pul", Line: LineRed},
	{ID: "assembly", Name: "Assembly", Line: LineRed},
	{ID: "nampally", Name: "Nampally", Line: LineRed},
	{ID: "gandhi-bhavan", Name: "Gandhi Bhavan", Line: LineRed},
	{ID: "osmania-medical", Name: "Osmania Medical College", Line: LineRed},
	{ID: "mg-bus-station", Name: "MG Bus Station", Line: LineInterchange},
	{ID: "malakpet", Name: "Malakpet", Line: LineRed},
	{ID: "new-market", Name: "New Market", Line: LineRed},
	{ID: "musarambagh", Name: "Musarambagh", Line: LineRed},
	{ID: "dilsukhnagar", Name: "Dilsukhnagar", Line: LineRed},
	{ID: "chaitanyapuri", Name: "Chaitanyapuri", Line: LineRed},
	{ID: "victoria-memorial", Name: "Victoria Memorial", Line: LineRed},
	{ID: "lb-nagar", Name: "LB Nagar", Line: LineRed},
	{ID: "nagole", Name: "Nagole", Line: LineBlue},
	{ID: "uppal", Name: "Uppal", Line: LineBlue},
	{ID: "stadium", Name: "Stadium", Line: LineBlue},
	{ID: "ngri", Name: "NGRI", Line: LineBlue},
	{ID: "habsiguda", Name: "Habsiguda", Line: LineBlue},
	{ID: "tarnaka", Name: "Tarnaka", Line: LineBlue},
	{ID: "mettuguda", Name: "Mettuguda", Line: LineBlue},
	{ID: "secunderabad-east", Name: "Secunderabad East", Line: LineBlue},
	{ID: "parade-ground", Name: "Parade Ground", Line: LineInterchange},
	{ID: "paradise", Name: "Paradise", Line: LineBlue},
	{ID: "rasoolpura", Name: "Rasoolpura", Line: LineBlue},
	{ID: "prakash-nagar", Name: "Prakash Nagar", Line: LineBlue},
	{ID: "begumpet", Name: "Begumpet", Line: LineBlue},
	{ID: "jbs", Name: "Jubilee Bus Station", Line: LineGreen},
	{ID: "secunderabad-west", Name: "Secunderabad West", Line: LineGreen},
	{ID: "gandhi-hospital", Name: "Gandhi Hospital", Line: LineGreen},
	{ID: "musheerabad", Name: "Musheerabad", Line: LineGreen},
	{ID: "rtc-x-roads", Name: "RTC X Roads", Line: LineGreen},
}
