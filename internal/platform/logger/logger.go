package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = map[Level]string{
	Debug: "debug",
	Info:  "info",
	Warn:  "warn",
	Error: "error",
}

// ParseLevel acepta debug|info|warn|warning|error. Cualquier otra cosa es Info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return Warn
	}
	for lvl, name := range levelNames {
		if name == s {
			return lvl
		}
	}
	return Info
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[Info]
}

type Format string

const (
	FormatText Format = "text" // logfmt: ts level msg primero, el resto ordenado
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Campos comunes.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldMetric    = "metric"
	FieldRecordID  = "record_id"
	FieldRequestID = "request_id"
)

// claves que van siempre al principio de la línea de texto
var leadingKeys = []string{"ts", "level", "msg"}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// WithComponent es un atajo para l.With({"component": name}).
func WithComponent(l Logger, name string) Logger {
	if l == nil {
		l = Nop()
	}
	return l.With(map[string]any{FieldComponent: name})
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Writer destino; por defecto os.Stdout.
	Writer io.Writer
	// Now para el campo ts; por defecto time.Now.
	Now func() time.Time
}

// sink es lo compartido entre un logger y los derivados con With.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	now    func() time.Time
}

// StdLogger escribe una línea por entrada.
type StdLogger struct {
	out  *sink
	base map[string]any
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &StdLogger{
		out:  &sink{w: w, level: opts.Level, format: format, now: now},
		base: base,
	}
}

// NewFromEnv lee LOG_LEVEL, LOG_FORMAT y APP_NAME. Solo se usa antes de
// tener la config cargada.
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &StdLogger{out: l.out, base: merge(l.base, fields)}
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.out.level {
		return
	}

	entry := merge(l.base, fields)
	entry["ts"] = l.out.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line []byte
	if l.out.format == FormatJSON {
		b, err := json.Marshal(entry)
		if err == nil {
			line = b
		}
	}
	if line == nil {
		line = []byte(formatText(entry))
	}
	line = append(line, '\n')

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	_, _ = l.out.w.Write(line)
}

// merge copia base y fields en un mapa nuevo, normalizando los valores.
func merge(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields)+len(leadingKeys))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch x := v.(type) {
	case error:
		return x.Error()
	case time.Time:
		// fechas de medición: sin hora
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

func formatText(m map[string]any) string {
	rest := make([]string, 0, len(m))
	for k := range m {
		if !isLeading(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	var b strings.Builder
	for _, k := range append(append([]string{}, leadingKeys...), rest...) {
		v, ok := m[k]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quote(fmt.Sprint(v)))
	}
	return b.String()
}

func isLeading(k string) bool {
	for _, lk := range leadingKeys {
		if k == lk {
			return true
		}
	}
	return false
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}

type nopLogger struct{}

// Nop descarta todo. Útil en tests y como default cuando no se inyecta logger.
func Nop() Logger { return nopLogger{} }

func (n nopLogger) With(map[string]any) Logger   { return n }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
