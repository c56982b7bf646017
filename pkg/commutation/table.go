package commutation

import "github.com/circuitkit/circuitkit/pkg/ops"

// table is the fixed pairwise commutation matrix over the table-kind
// ordinal space. table[a][b] is true when kinds a and b commute on fully
// overlapping wires. It is built once at package init from the row lists
// below. Every commuting pair must appear in both kinds' rows, so the
// matrix is symmetric.
var table [ops.NumTableKinds][ops.NumTableKinds]bool

// commutingKinds lists, for every table kind, the kinds it commutes with.
// The ctrl pseudo-kind stands for the control part of a controlled
// operation and shares the diagonal-gate row: a control is diagonal in the
// computational basis. Barrier and WireCut rows are empty on purpose:
// markers never commute with anything, including each other.
var commutingKinds = [ops.NumTableKinds][]ops.Kind{
	ops.KindHadamard: {ops.KindHadamard, ops.KindIdentity},
	ops.KindPauliX: {
		ops.KindPauliX, ops.KindSX, ops.KindRX, ops.KindIdentity, ops.KindIsingXX,
	},
	ops.KindPauliY: {
		ops.KindPauliY, ops.KindRY, ops.KindIdentity, ops.KindIsingYY,
	},
	ops.KindPauliZ: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindSWAP: {ops.KindSWAP, ops.KindISWAP, ops.KindSISWAP, ops.KindIdentity},
	ops.KindCtrl: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindS: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindT: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindSX: {
		ops.KindPauliX, ops.KindSX, ops.KindRX, ops.KindIdentity, ops.KindIsingXX,
	},
	ops.KindISWAP:   {ops.KindSWAP, ops.KindISWAP, ops.KindSISWAP, ops.KindIdentity},
	ops.KindSISWAP:  {ops.KindSWAP, ops.KindISWAP, ops.KindSISWAP, ops.KindIdentity},
	ops.KindBarrier: {},
	ops.KindWireCut: {},
	ops.KindRX: {
		ops.KindPauliX, ops.KindSX, ops.KindRX, ops.KindIdentity, ops.KindIsingXX,
	},
	ops.KindRY: {
		ops.KindPauliY, ops.KindRY, ops.KindIdentity, ops.KindIsingYY,
	},
	ops.KindRZ: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindPhaseShift: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindRot: {ops.KindIdentity},
	ops.KindMultiRZ: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindIdentity: {
		ops.KindHadamard, ops.KindPauliX, ops.KindPauliY, ops.KindPauliZ,
		ops.KindSWAP, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindSX,
		ops.KindISWAP, ops.KindSISWAP, ops.KindRX, ops.KindRY, ops.KindRZ,
		ops.KindPhaseShift, ops.KindRot, ops.KindMultiRZ, ops.KindIdentity,
		ops.KindU1, ops.KindU2, ops.KindU3, ops.KindIsingXX, ops.KindIsingYY,
		ops.KindIsingZZ,
	},
	ops.KindU1: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindU2: {ops.KindIdentity},
	ops.KindU3: {ops.KindIdentity},
	ops.KindIsingXX: {
		ops.KindPauliX, ops.KindSX, ops.KindRX, ops.KindIdentity, ops.KindIsingXX,
	},
	ops.KindIsingYY: {
		ops.KindPauliY, ops.KindRY, ops.KindIdentity, ops.KindIsingYY,
	},
	ops.KindIsingZZ: {
		ops.KindPauliZ, ops.KindCtrl, ops.KindS, ops.KindT, ops.KindRZ,
		ops.KindPhaseShift, ops.KindMultiRZ, ops.KindIdentity, ops.KindU1, ops.KindIsingZZ,
	},
	ops.KindStatePrep:  {},
	ops.KindBasisState: {},
}

func init() {
	for a, row := range commutingKinds {
		for _, b := range row {
			table[a][b] = true
		}
	}
}

// tableCommute looks up the commutation verdict for two table kinds.
func tableCommute(a, b ops.Kind) bool {
	return table[a][b]
}
