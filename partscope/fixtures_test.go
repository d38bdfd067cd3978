package partscope

// sampleRecords covers every absence case the filter cares about:
// record 3 has no part status and no threshold, 4 has no configuration,
// 5 has a blank material and no automotive marker.
func sampleRecords() []Record {
	return []Record{
		{
			ID:                      1,
			PartNumber:              "IRF540N",
			Manufacturer:            "Infineon",
			Package:                 "TO-220",
			MountingType:            "THT",
			ChannelType:             "N",
			Configuration:           "Single",
			Material:                "Si",
			PartStatus:              "Active",
			IndustryPackageCategory: "TO",
			ProductPackageCategory:  "TO-220",
			Automotive:              "No",
			BreakdownVoltage:        100,
			ThresholdVoltage:        Float(3),
			OnResistance:            [OnResistanceConditions]*float64{Float(0.044), nil, nil, nil},
		},
		{
			ID:                      2,
			PartNumber:              "SQJ456EP",
			Manufacturer:            "Vishay",
			Package:                 "PowerPAK SO-8L",
			MountingType:            "SMD",
			ChannelType:             "N",
			Configuration:           "Single",
			Material:                "Si",
			PartStatus:              "Active",
			IndustryPackageCategory: "SO",
			ProductPackageCategory:  "SO-8",
			Automotive:              "Yes",
			BreakdownVoltage:        40,
			ThresholdVoltage:        Float(2.5),
			OnResistance:            [OnResistanceConditions]*float64{Float(0.5), nil, Float(0.3), nil},
			TypicalOnResistance:     Float(0.25),
		},
		{
			ID:                  3,
			PartNumber:          "BSC010N04LS",
			Manufacturer:        "Infineon",
			Package:             "TDSON-8",
			MountingType:        "SMD",
			ChannelType:         "N",
			Configuration:       "Single",
			Material:            "Si",
			Automotive:          "No",
			BreakdownVoltage:    40,
			TypicalOnResistance: Float(0.8),
		},
		{
			ID:               4,
			PartNumber:       "C3M0065090D",
			Manufacturer:     "Wolfspeed",
			Package:          "TO-247",
			MountingType:     "THT",
			ChannelType:      "N",
			Material:         "SiC",
			PartStatus:       "Active",
			Automotive:       "Yes",
			BreakdownVoltage: 900,
			ThresholdVoltage: Float(2.1),
		},
		{
			ID:               5,
			PartNumber:       "irf9540",
			Manufacturer:     "Vishay",
			Package:          "TO-220",
			MountingType:     "THT",
			ChannelType:      "P",
			Configuration:    "Single",
			Material:         "  ",
			PartStatus:       "Obsolete",
			BreakdownVoltage: -100,
			OnResistance:     [OnResistanceConditions]*float64{nil, Float(0.2), nil, Float(0.117)},
		},
	}
}

func mustCatalog(records []Record) *Catalog {
	c, err := NewCatalog(records)
	if err != nil {
		panic(err)
	}
	return c
}

func ids(records []Record) []RecordID {
	out := make([]RecordID, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
