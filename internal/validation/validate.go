package validation

import "videofix/internal/metadata"

// FormatSpec is one policy: four independently evaluated rules.
type FormatSpec struct {
	Container Rule
	Video     Rule
	Audio     Rule
	PixFmt    Rule
}

// Validation is the per-dimension compliance outcome for one file.
type Validation struct {
	ContainerOkay bool
	VideoOkay     bool
	AudioOkay     bool
	PixFmtOkay    bool
}

// IsValid reports whether every dimension is compliant. It is recomputed
// from the flags so that updating one of them is always reflected.
func (v Validation) IsValid() bool {
	return v.ContainerOkay && v.VideoOkay && v.AudioOkay && v.PixFmtOkay
}

// Evaluate checks the observed file format against a FormatSpec.
// Pure function: no I/O, inputs are not mutated.
func Evaluate(meta *metadata.FileMetadata, spec FormatSpec) Validation {
	return Validation{
		ContainerOkay: spec.Container.Compliant(meta.Container),
		VideoOkay:     spec.Video.Compliant(meta.Video.Codec),
		AudioOkay:     spec.Audio.Compliant(meta.Audio.Codec),
		PixFmtOkay:    spec.PixFmt.Compliant(meta.Video.PixFmt),
	}
}
