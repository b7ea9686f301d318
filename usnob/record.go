package usnob

import (
	"encoding/binary"
	"fmt"

	"github.com/platesolve/starindex/internal/arcsec"
	"github.com/platesolve/starindex/internal/digits"
)

const recordSize = 80
const wordCount = 20

// wordsFromBytes reinterprets an 80-byte USNO-B record as 20 native-order
// uint32 words. The source produces these files with a raw pointer
// reinterpret on the writing host, so native order is the correct default
// for files read back on the same architecture family.
func wordsFromBytes(buf [recordSize]byte) [wordCount]uint32 {
	var words [wordCount]uint32
	for i := 0; i < wordCount; i++ {
		words[i] = binary.NativeEndian.Uint32(buf[i*4 : i*4+4])
	}
	return words
}

// decodeObservation builds the Observation for one plate slot from its
// (mag/field/survey/star_galaxy) word and its (xi/eta/calibration) word,
// plus the raw pmmscan back-pointer word. It returns nil when the slot's
// field number is zero, meaning the slot is absent.
func decodeObservation(magWord, residWord, pmmscanWord uint32, nDetections uint8) *Observation {
	chunks := digits.Extract(magWord, []int{4, 3, 1, 2})
	magRaw, fieldRaw, surveyRaw, starGalaxyRaw := chunks[0], chunks[1], chunks[2], chunks[3]

	field := int16(fieldRaw)
	if field == 0 {
		return nil
	}

	residChunks := digits.Extract(residWord, []int{4, 4, 1})
	xiRaw, etaRaw, calibrationRaw := residChunks[0], residChunks[1], residChunks[2]

	var xiResid, etaResid float64
	// The guard below matches the source exactly: field == 0 never holds
	// here since absent slots already returned above, so these residuals
	// are always zero under the current logic. Kept as documented
	// canonical behavior rather than "fixed".
	if nDetections >= 2 && field == 0 {
		xiResid = arcsec.ToDegrees(0.01 * float64(xiRaw))
		etaResid = arcsec.ToDegrees(0.01 * float64(etaRaw))
	}

	return &Observation{
		Mag:         0.01 * float64(magRaw),
		Field:       field,
		Survey:      surveyRaw,
		StarGalaxy:  uint8(starGalaxyRaw),
		XiResid:     xiResid,
		EtaResid:    etaResid,
		Calibration: uint8(calibrationRaw),
		Pmmscan:     int32(pmmscanWord),
	}
}

// Decode parses a single 80-byte USNO-B record into a Star. recordIndex is
// the record's 1-based position within its containing file and feeds the
// usnob_id's numeric suffix.
func Decode(buf []byte, recordIndex int) (*Star, error) {
	if len(buf) < recordSize {
		return nil, ErrShortRead
	}

	var fixed [recordSize]byte
	copy(fixed[:], buf[:recordSize])
	w := wordsFromBytes(fixed)

	ra := arcsec.ToDegrees(float64(w[0]) / 100.0)
	if ra < 0 || ra >= 360 {
		return nil, ErrOutOfRange
	}

	dec := arcsec.ToDegrees(float64(w[1])/100.0) - 90.0
	if dec < -90 || dec > 90 {
		return nil, ErrOutOfRange
	}

	pmChunks := digits.Extract(w[2], []int{4, 4, 1, 1})
	pmRaRaw, pmDecRaw, pmProbRaw, motionCatalogRaw := pmChunks[0], pmChunks[1], pmChunks[2], pmChunks[3]

	pmRA := 0.002 * (float64(pmRaRaw) - 5000.0)
	pmDec := 0.002 * (float64(pmDecRaw) - 5000.0)
	pmProb := 0.1 * float64(pmProbRaw)
	motionCatalog := motionCatalogRaw == 1

	sigChunks := digits.Extract(w[3], []int{3, 3, 1, 1, 1, 1})
	sigmaPmRaRaw, sigmaPmDecRaw, sigmaRaFitRaw, sigmaDecFitRaw, nDetectionsRaw, diffSpikeRaw :=
		sigChunks[0], sigChunks[1], sigChunks[2], sigChunks[3], sigChunks[4], sigChunks[5]

	sigmaPmRa := 0.001 * float64(sigmaPmRaRaw)
	sigmaPmDec := 0.001 * float64(sigmaPmDecRaw)
	sigmaRaFit := arcsec.ToDegrees(0.1 * float64(sigmaRaFitRaw))
	sigmaDecFit := arcsec.ToDegrees(0.1 * float64(sigmaDecFitRaw))
	nDetections := uint8(nDetectionsRaw)
	diffractionSpike := diffSpikeRaw == 1

	epochChunks := digits.Extract(w[4], []int{3, 3, 3, 1})
	sigmaRaRaw, sigmaDecRaw, epochRaw, ys4Raw := epochChunks[0], epochChunks[1], epochChunks[2], epochChunks[3]

	sigmaRa := arcsec.ToDegrees(0.001 * float64(sigmaRaRaw))
	sigmaDec := arcsec.ToDegrees(0.001 * float64(sigmaDecRaw))
	epoch := 1950.0 + 0.1*float64(epochRaw)
	ys4 := ys4Raw == 1

	observations := make([]*Observation, 5)
	for i := 0; i < 5; i++ {
		observations[i] = decodeObservation(w[5+i], w[10+i], w[15+i], nDetections)
	}

	// floor((dec+90)*10) taken from the raw word in integer arithmetic:
	// (dec+90) degrees is w[1]/100 arcsec, so the slice is w[1]/36000.
	// The float dec has round-off (35 deg decodes as 34.999...) that would
	// otherwise floor into the slice below.
	slice := int(w[1] / 36000)

	return &Star{
		UsnobID:          fmt.Sprintf("%04d-%07d", slice, recordIndex),
		RA:               ra,
		Dec:              dec,
		SigmaRA:          sigmaRa,
		SigmaDec:         sigmaDec,
		SigmaRAFit:       sigmaRaFit,
		SigmaDecFit:      sigmaDecFit,
		PMRA:             pmRA,
		PMDec:            pmDec,
		SigmaPMRA:        sigmaPmRa,
		SigmaPMDec:       sigmaPmDec,
		PMProb:           pmProb,
		Epoch:            epoch,
		NDetections:      nDetections,
		DiffractionSpike: diffractionSpike,
		MotionCatalog:    motionCatalog,
		YS4:              ys4,
		Blue1:            observations[0],
		Red1:             observations[1],
		Blue2:            observations[2],
		Red2:             observations[3],
		Infrared:         observations[4],
	}, nil
}
