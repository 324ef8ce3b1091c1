package gesture

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetLogger routes the Recognizer's diagnostics (session arm/reset, resolved
// taps and holds, suppressed samples) to l at debug level. Pass nil to
// silence them again.
func (r *Recognizer) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l.Named("gesture")
}

// suppressed records a gesture sample dropped because its geometry was
// degenerate.
func (r *Recognizer) suppressed(kind Kind, id int) {
	if ce := r.log.Check(zapcore.DebugLevel, "sample suppressed"); ce != nil {
		ce.Write(zap.Stringer("kind", kind), zap.Int("id", id), zap.Int("contacts", r.contacts.len()))
	}
}

// zapVec encodes a Vec2 as an inline {x, y} object.
func zapVec(key string, v Vec2) zap.Field {
	return zap.Object(key, vecMarshaler(v))
}

type vecMarshaler Vec2

func (v vecMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	return nil
}
