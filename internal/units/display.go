package units

// displayStrings maps canonical unit keys to the human-readable strings
// restored by the formatter. Unmapped keys pass through unchanged.
var displayStrings = map[string]string{
	Percent:            "%",
	GramPerCm3:         "g/cm^3",
	KgPerM3:            "kg/m^3",
	SquareMeter:        "m^2",
	PoresPerCm:         "pores/cm",
	PoresPerInch:       "pores/in",
	WattPerMeterKelvin: "W/mK",
	PerMeter:           "1/m",
	PerFoot:            "1/ft",
}

// Display returns the human-readable form of a canonical unit key.
func Display(canonical string) string {
	if s, ok := displayStrings[canonical]; ok {
		return s
	}
	return canonical
}
