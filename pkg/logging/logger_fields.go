package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

// Domain field helpers for the clustering engine
func VertexCount(n int) Field {
	return Int("vertices", n)
}

func EdgeCount(m uint64) Field {
	return Uint64("edges", m)
}

func Measure(name string) Field {
	return String("similarity", name)
}

func Mu(mu uint64) Field {
	return Uint64("mu", mu)
}

func Epsilon(eps float32) Field {
	return Float64("epsilon", float64(eps))
}

func Cores(n int) Field {
	return Int("cores", n)
}

func Clusters(n int) Field {
	return Int("clusters", n)
}

func RunID(id string) Field {
	return String("run_id", id)
}
