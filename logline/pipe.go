package logline

// Pipe streams every line of a Reader into a Writer. Kept lines are
// written verbatim, so a pipe never reformats its input. All the
// subcommands that read records and write records are this loop with a
// different Keep.
type Pipe struct {
	// Keep decides whether a parsed record stays in the stream. Nil keeps
	// everything, which is what merge wants.
	Keep func(*Record) bool

	// CopyFailures writes unparseable lines through verbatim instead of
	// dropping them. Merge sets this to stay lossless; the filtering
	// operations leave it off because a line that cannot be parsed cannot
	// be matched.
	CopyFailures bool

	// OnFailure is called for every parse failure, after the failure has
	// been counted. Optional.
	OnFailure func(*Line)
}

// PipeResult tallies one run.
type PipeResult struct {
	Read     int // non-blank lines consumed
	Written  int // lines written, raw pass-throughs included
	Dropped  int // parsed records rejected by Keep
	Failures int // lines that did not parse as a JSON object
}

// Run drains r into w. Parse failures are recoverable and never stop the
// stream; the first I/O error does, with the partial tally returned
// alongside it.
func (p *Pipe) Run(r *Reader, w *Writer) (PipeResult, error) {
	var result PipeResult
	for r.Next() {
		line := r.Line()
		result.Read++

		if line.Err != nil {
			result.Failures++
			if p.OnFailure != nil {
				p.OnFailure(line)
			}
			if p.CopyFailures {
				if err := w.WriteRaw(line.Raw); err != nil {
					return result, err
				}
				result.Written++
			}
			continue
		}

		if p.Keep != nil && !p.Keep(line.Record) {
			result.Dropped++
			continue
		}

		if err := w.WriteRaw(line.Raw); err != nil {
			return result, err
		}
		result.Written++
	}
	if err := r.Err(); err != nil {
		return result, err
	}
	return result, nil
}
