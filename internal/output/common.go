package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tlength\tscore\tcanonical\tstructure\tmodule_paths"
