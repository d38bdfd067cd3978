package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/partscope/partscope/partscope"
)

// wireRecord is the devices.json element shape. Exporters are inconsistent
// about numbers vs strings, so every field goes through a flexible decoder.
type wireRecord struct {
	DID               flexInt    `json:"did"`
	FName             flexString `json:"fname"`
	Manf              flexString `json:"manf"`
	PartNo            flexString `json:"partno"`
	Package           flexString `json:"package"`
	PackageManfName   flexString `json:"packagemanfname"`
	Mounting          flexString `json:"mounting"`
	Channel           flexString `json:"channel"`
	Config            flexString `json:"config"`
	Material          flexString `json:"material"`
	PartStatus        flexString `json:"part_status"`
	PackageCat1       flexString `json:"discoveree_package_cat1"`
	PackageCat2       flexString `json:"discoveree_package_cat2"`
	Auto              flexString `json:"auto"`
	VDS               flexFloat  `json:"vds"`
	VGS               flexFloat  `json:"vgs"`
	VthTyp            flexFloat  `json:"vthtyp"`
	RthJA             flexFloat  `json:"rthja"`
	CissTyp           flexFloat  `json:"cisstyp"`
	RdsOn1Max         flexFloat  `json:"rdson1max"`
	RdsOn2Max         flexFloat  `json:"rdson2max"`
	RdsOn3Max         flexFloat  `json:"rdson3max"`
	RdsOn4Max         flexFloat  `json:"rdson4max"`
	RdsOnTyp10VGS25TA flexFloat  `json:"rdsontyp10vgs25ta"`
}

func (w wireRecord) record() partscope.Record {
	r := partscope.Record{
		ID:                      partscope.RecordID(w.DID.v),
		FileName:                string(w.FName),
		Manufacturer:            string(w.Manf),
		PartNumber:              string(w.PartNo),
		Package:                 string(w.Package),
		PackageManufacturerName: string(w.PackageManfName),
		MountingType:            string(w.Mounting),
		ChannelType:             string(w.Channel),
		Configuration:           string(w.Config),
		Material:                string(w.Material),
		PartStatus:              string(w.PartStatus),
		IndustryPackageCategory: string(w.PackageCat1),
		ProductPackageCategory:  string(w.PackageCat2),
		Automotive:              string(w.Auto),
		GateVoltage:             w.VGS.v,
		ThresholdVoltage:        w.VthTyp.v,
		ThermalResistance:       w.RthJA.v,
		Capacitance:             w.CissTyp.v,
		TypicalOnResistance:     w.RdsOnTyp10VGS25TA.v,
	}
	if w.VDS.v != nil {
		r.BreakdownVoltage = *w.VDS.v
	}
	r.OnResistance = [partscope.OnResistanceConditions]*float64{
		w.RdsOn1Max.v, w.RdsOn2Max.v, w.RdsOn3Max.v, w.RdsOn4Max.v,
	}
	return r
}

// DecodeRecords reads a JSON array of device objects. Elements without an
// identifier are dropped and counted in skipped.
func DecodeRecords(r io.Reader) (records []partscope.Record, skipped int, err error) {
	var wire []wireRecord
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, 0, partscope.Wrap(partscope.ErrDecode, "decode catalog", err)
	}
	records = make([]partscope.Record, 0, len(wire))
	for _, w := range wire {
		if !w.DID.ok {
			skipped++
			continue
		}
		records = append(records, w.record())
	}
	return records, skipped, nil
}

type flexString string

func (s *flexString) UnmarshalJSON(raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		*s = flexString(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*s = flexString(strconv.FormatBool(b))
		return nil
	}
	return fmt.Errorf("expected string, got %s", raw)
}

type flexFloat struct {
	v *float64
}

func (f *flexFloat) UnmarshalJSON(raw []byte) error {
	f.v = nil
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		f.v = &num
		return nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return fmt.Errorf("expected number, got %s", raw)
	}
	// blank and non-numeric strings are treated as absent
	f.v = partscope.ParseBound(str)
	return nil
}

type flexInt struct {
	v  int64
	ok bool
}

func (f *flexInt) UnmarshalJSON(raw []byte) error {
	*f = flexInt{}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		raw = []byte(strings.TrimSpace(str))
		if len(raw) == 0 {
			return nil
		}
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("expected integer id, got %s", raw)
	}
	f.v, f.ok = n, true
	return nil
}
