package commands

import (
	"github.com/pterm/pterm"

	"github.com/teranos/logbox/logger"
	"github.com/teranos/logbox/logline"
)

// runPipe wires a reader over files into a writer at out and runs p.
func runPipe(p *logline.Pipe, files []string, out string) (logline.PipeResult, error) {
	r, err := logline.NewReader(files...)
	if err != nil {
		return logline.PipeResult{}, err
	}
	defer r.Close()

	w, err := logline.NewWriter(out)
	if err != nil {
		return logline.PipeResult{}, err
	}

	result, err := p.Run(r, w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return result, err
}

// summarize prints a user-facing completion line, unless the record
// stream itself is on stdout, where chatter would corrupt it.
func summarize(out, msg string) {
	if out == "-" {
		return
	}
	pterm.Success.Println(msg)
}

// logFailure reports one unparseable line at debug level.
func logFailure(line *logline.Line) {
	logger.Debugw("skipping unparseable line",
		logger.FieldFile, line.Source,
		logger.FieldLine, line.Number,
		logger.FieldError, line.Err)
}
