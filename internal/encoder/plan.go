package encoder

// Plan maps a quality preset and capability to engine invocation
// arguments. The function is total: every pair yields a usable argument
// list, and audio is always stream-copied, never re-encoded.
//
// Hardware backends have no true lossless mode; the lossless preset maps
// to each backend's most quality-preserving rate-control point (a bitrate
// or quantizer ceiling). Only libx264 with CRF 0 is mathematically
// lossless.
func Plan(quality Quality, capability Capability) []string {
	switch capability {
	case CapabilityVideoToolbox:
		bitrate := "25M"
		switch quality {
		case QualityHigh:
			bitrate = "15M"
		case QualityMedium:
			bitrate = "10M"
		}
		return []string{
			"-c:v", capability.Encoder(),
			"-b:v", bitrate,
			"-allow_sw", "1",
			"-c:a", "copy",
		}
	case CapabilityNVENC:
		cq, preset := "15", "p7"
		switch quality {
		case QualityHigh:
			cq = "18"
		case QualityMedium:
			cq, preset = "23", "p4"
		}
		return []string{
			"-c:v", capability.Encoder(),
			"-preset", preset,
			"-cq", cq,
			"-c:a", "copy",
		}
	case CapabilityQuickSync:
		return []string{
			"-c:v", capability.Encoder(),
			"-global_quality", quantizerFor(quality),
			"-look_ahead", "1",
			"-c:a", "copy",
		}
	case CapabilityAMF:
		qp := quantizerFor(quality)
		return []string{
			"-c:v", capability.Encoder(),
			"-rc", "cqp",
			"-qp_i", qp,
			"-qp_p", qp,
			"-c:a", "copy",
		}
	default:
		crf, preset := "0", "veryslow"
		switch quality {
		case QualityHigh:
			crf, preset = "18", "slow"
		case QualityMedium:
			crf, preset = "23", "medium"
		}
		return []string{
			"-c:v", "libx264",
			"-crf", crf,
			"-preset", preset,
			"-c:a", "copy",
		}
	}
}

func quantizerFor(quality Quality) string {
	switch quality {
	case QualityHigh:
		return "18"
	case QualityMedium:
		return "23"
	default:
		return "15"
	}
}
