package usnob

import "errors"

// ErrOutOfRange is returned by Decode when the record's right ascension
// or declination falls outside the legal celestial range.
var ErrOutOfRange = errors.New("usnob: ra/dec out of range")

// ErrShortRead is returned by Decode when fewer than 80 bytes are
// supplied for a record.
var ErrShortRead = errors.New("usnob: short record, need 80 bytes")

// Observation is a single band/epoch measurement of a Star. A nil
// Observation means the plate slot is absent from the source record.
type Observation struct {
	Mag         float64 `json:"mag"`
	Field       int16   `json:"field"`
	Survey      uint32  `json:"survey"`
	StarGalaxy  uint8   `json:"star_galaxy"`
	XiResid     float64 `json:"xi_resid"`
	EtaResid    float64 `json:"eta_resid"`
	Calibration uint8   `json:"calibration"`
	Pmmscan     int32   `json:"pmmscan"`
}

// Star is a single decoded USNO-B catalog entry.
type Star struct {
	UsnobID string `json:"usnob_id"`

	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`

	SigmaRA    float64 `json:"sigma_ra"`
	SigmaDec   float64 `json:"sigma_dec"`
	SigmaRAFit float64 `json:"sigma_ra_fit"`
	SigmaDecFit float64 `json:"sigma_dec_fit"`

	PMRA      float64 `json:"pm_ra"`
	PMDec     float64 `json:"pm_dec"`
	SigmaPMRA float64 `json:"sigma_pm_ra"`
	SigmaPMDec float64 `json:"sigma_pm_dec"`
	PMProb    float64 `json:"pm_prob"`

	Epoch       float64 `json:"epoch"`
	NDetections uint8   `json:"n_detections"`

	DiffractionSpike bool `json:"diffraction_spike"`
	MotionCatalog    bool `json:"motion_catalog"`
	YS4              bool `json:"ys4"`

	Blue1    *Observation `json:"blue1"`
	Red1     *Observation `json:"red1"`
	Blue2    *Observation `json:"blue2"`
	Red2     *Observation `json:"red2"`
	Infrared *Observation `json:"infrared"`
}

// Observations returns the five plate slots in their fixed positional
// order, blue1 through infrared, including nil entries for absent slots.
func (s *Star) Observations() [5]*Observation {
	return [5]*Observation{s.Blue1, s.Red1, s.Blue2, s.Red2, s.Infrared}
}
