package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// ANSI control sequences
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Gruvbox Dark color palette (warm, muted, easy on eyes)
type gruvboxColors struct {
	fg       string
	aqua     string
	orange   string
	yellow   string
	green    string
	blue     string
	red      string
	redBg    string
	yellowBg string
}

var gruvbox = gruvboxColors{
	fg:       "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	aqua:     "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	orange:   "\x1b[38;5;208m", // Warm orange (#fe8019)
	yellow:   "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	green:    "\x1b[38;5;142m", // Muted green (#b8bb26)
	blue:     "\x1b[38;5;109m", // Soft blue (#83a598)
	red:      "\x1b[38;5;167m", // Warm red (#fb4934)
	redBg:    "\x1b[48;5;88m",  // Dark red background
	yellowBg: "\x1b[48;5;58m",  // Dark yellow background
}

// minimalEncoder implements a calm, compact console encoder
// Format: "13:04:35  merge  wrote output  records=1204 output=merged.json"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
	buf             *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	// Create a base JSON encoder for field serialization (internal use only)
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	// Time
	final.AppendString(gruvbox.aqua)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR with bold + background
	if ent.Level != zapcore.InfoLevel && ent.Level != zapcore.DebugLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	// Component name (abbreviated) for visual grouping
	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(gruvbox.orange)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	// Message
	final.AppendString("  ")
	final.AppendString(gruvbox.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	// Fields: every field is rendered, none are silently discarded
	if rendered := renderFields(fields); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + gruvbox.yellowBg + gruvbox.yellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + gruvbox.redBg + gruvbox.red + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + gruvbox.redBg + gruvbox.red + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: fetch -> fetch, logline.reader -> l.reader
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// renderFields produces "key=value" pairs for every structured field.
// Values go through a map object encoder so arrays, durations, and errors all
// get a usable representation; a field must never vanish from the output.
func renderFields(fields []zapcore.Field) string {
	if len(fields) == 0 {
		return ""
	}

	mapEnc := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		if field.Type == zapcore.SkipType {
			continue
		}
		field.AddTo(mapEnc)
	}

	var pairs []string
	for _, field := range fields {
		if field.Type == zapcore.SkipType {
			continue
		}
		value, ok := mapEnc.Fields[field.Key]
		if !ok {
			continue
		}
		pairs = append(pairs, fieldColor(field.Key, value)+field.Key+"="+fmt.Sprintf("%v", value)+colorReset)
	}

	return strings.Join(pairs, " ")
}

// fieldColor picks a color per field: errors red, numbers green, rest plain
func fieldColor(key string, value interface{}) string {
	if key == FieldError {
		return gruvbox.red
	}
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return gruvbox.green
	default:
		return gruvbox.fg
	}
}
