package ops

// Kind identifies an operation category. Category membership drives which
// commutation rule applies: the first block of kinds (up to KindBasisState)
// carries a fixed pairwise commutation table indexed by these ordinals,
// the template kinds never commute once wires overlap, and the unsupported
// kinds cannot be analyzed at all.
//
// The ordinal values of the table kinds are load-bearing: they index the
// commutation table. Do not reorder them.
type Kind int

const (
	KindHadamard Kind = iota
	KindPauliX
	KindPauliY
	KindPauliZ
	KindSWAP
	// KindCtrl is a pseudo-kind reserved for the control part of a
	// controlled operation. It never appears on a concrete Operation but
	// owns a row in the commutation table.
	KindCtrl
	KindS
	KindT
	KindSX
	KindISWAP
	KindSISWAP
	KindBarrier
	KindWireCut
	KindRX
	KindRY
	KindRZ
	KindPhaseShift
	KindRot
	KindMultiRZ
	KindIdentity
	KindU1
	KindU2
	KindU3
	KindIsingXX
	KindIsingYY
	KindIsingZZ
	KindStatePrep
	KindBasisState

	// Structurally entangling templates: never commute with anything that
	// shares a wire.
	KindQubitCarry
	KindQubitSum
	KindSingleExcitation
	KindDoubleExcitation
	KindBasicEntanglerLayers
	KindStronglyEntanglingLayers
	KindRandomLayers
	KindGrover
	KindPermute
	KindQFT
	KindQuantumPhaseEstimation
	KindAmplitudeEmbedding
	KindAngleEmbedding
	KindBasisEmbedding
	KindIQPEmbedding
	KindQAOAEmbedding
	KindMottonenStatePrep

	// Kinds the commutation model cannot analyze.
	KindPauliRot
	KindQubitDensityMatrix
	KindArbitraryUnitary
	KindApproxTimeEvolution
	KindCommutingEvolution
	KindDisplacement
	KindSqueezing
	KindDisplacementEmbedding
	KindSqueezingEmbedding
	KindBitFlip
	KindPhaseFlip
	KindDepolarizingChannel
	KindAmplitudeDamping

	numKinds
)

// NumTableKinds is the size of the commutation table's ordinal space.
// Table kinds are exactly the kinds with ordinal < NumTableKinds.
const NumTableKinds = int(KindBasisState) + 1

var kindNames = [numKinds]string{
	KindHadamard:   "Hadamard",
	KindPauliX:     "PauliX",
	KindPauliY:     "PauliY",
	KindPauliZ:     "PauliZ",
	KindSWAP:       "SWAP",
	KindCtrl:       "ctrl",
	KindS:          "S",
	KindT:          "T",
	KindSX:         "SX",
	KindISWAP:      "ISWAP",
	KindSISWAP:     "SISWAP",
	KindBarrier:    "Barrier",
	KindWireCut:    "WireCut",
	KindRX:         "RX",
	KindRY:         "RY",
	KindRZ:         "RZ",
	KindPhaseShift: "PhaseShift",
	KindRot:        "Rot",
	KindMultiRZ:    "MultiRZ",
	KindIdentity:   "Identity",
	KindU1:         "U1",
	KindU2:         "U2",
	KindU3:         "U3",
	KindIsingXX:    "IsingXX",
	KindIsingYY:    "IsingYY",
	KindIsingZZ:    "IsingZZ",
	KindStatePrep:  "StatePrep",
	KindBasisState: "BasisState",

	KindQubitCarry:               "QubitCarry",
	KindQubitSum:                 "QubitSum",
	KindSingleExcitation:         "SingleExcitation",
	KindDoubleExcitation:         "DoubleExcitation",
	KindBasicEntanglerLayers:     "BasicEntanglerLayers",
	KindStronglyEntanglingLayers: "StronglyEntanglingLayers",
	KindRandomLayers:             "RandomLayers",
	KindGrover:                   "Grover",
	KindPermute:                  "Permute",
	KindQFT:                      "QFT",
	KindQuantumPhaseEstimation:   "QuantumPhaseEstimation",
	KindAmplitudeEmbedding:       "AmplitudeEmbedding",
	KindAngleEmbedding:           "AngleEmbedding",
	KindBasisEmbedding:           "BasisEmbedding",
	KindIQPEmbedding:             "IQPEmbedding",
	KindQAOAEmbedding:            "QAOAEmbedding",
	KindMottonenStatePrep:        "MottonenStatePrep",

	KindPauliRot:              "PauliRot",
	KindQubitDensityMatrix:    "QubitDensityMatrix",
	KindArbitraryUnitary:      "ArbitraryUnitary",
	KindApproxTimeEvolution:   "ApproxTimeEvolution",
	KindCommutingEvolution:    "CommutingEvolution",
	KindDisplacement:          "Displacement",
	KindSqueezing:             "Squeezing",
	KindDisplacementEmbedding: "DisplacementEmbedding",
	KindSqueezingEmbedding:    "SqueezingEmbedding",
	KindBitFlip:               "BitFlip",
	KindPhaseFlip:             "PhaseFlip",
	KindDepolarizingChannel:   "DepolarizingChannel",
	KindAmplitudeDamping:      "AmplitudeDamping",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindByName resolves a canonical kind name back to its Kind.
func KindByName(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// InTable reports whether k owns a row in the commutation table.
func (k Kind) InTable() bool {
	return int(k) < NumTableKinds
}

// IsTemplate reports whether k is a structurally entangling template that
// never commutes with an overlapping operation.
func (k Kind) IsTemplate() bool {
	return k >= KindQubitCarry && k <= KindMottonenStatePrep
}

// IsUnsupported reports whether k is outside the commutation model
// (continuous-variable operations, noise channels, or named operations the
// model refuses to analyze).
func (k Kind) IsUnsupported() bool {
	return k >= KindPauliRot && k < numKinds
}

// IsRotationFamily reports whether k is one of the generic rotation forms
// that must be canonicalized before consulting the commutation table.
func (k Kind) IsRotationFamily() bool {
	return k == KindRot || k == KindU2 || k == KindU3
}
