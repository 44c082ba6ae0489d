package output

// Header rows of the three reports. Keep these as the single source of
// truth; writers and tests both use them.
const (
	LocationsHeader  = "id\tstart_pos\tend_pos\trepeat_number\trepeat_sequence\tsequence_length"
	EstimatesHeader  = "telomeric_repeat\treverse_complement\tfrequency"
	WindowsTSVHeader = "id\twindow\tforward_repeat_number\treverse_repeat_number\ttelomeric_repeat"
)

// ExtTSV is the extension that selects the headed five-column window report.
const ExtTSV = "tsv"
