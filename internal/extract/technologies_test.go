package extract

import (
	"reflect"
	"testing"

	"goreview/adapters/tabular"
)

func TestDetectTechnologies(t *testing.T) {
	rows := []tabular.Row{
		titleRow("Migrate app from react native 0.73.8 to 0.78.2"),
		titleRow("Stream checkout events to Kafka and ClickHouse"),
		titleRow("Wire crash reporting through Crashlytics"),
	}
	got := DetectTechnologies(rows)
	want := []string{"ClickHouse", "Crashlytics", "Kafka", "React Native"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTechnologies = %v, want %v", got, want)
	}
}

func TestDetectTechnologiesCanonicalCasing(t *testing.T) {
	got := DetectTechnologies([]tabular.Row{titleRow("adopt TYPESCRIPT and node.js across repos")})
	want := []string{"Node.js", "TypeScript"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTechnologies = %v, want %v", got, want)
	}
}

func TestDetectTechnologiesSubstringContainment(t *testing.T) {
	// Containment is deliberately loose: "Rapid" carries "API".
	got := DetectTechnologies([]tabular.Row{titleRow("Rapid prototyping sprint")})
	want := []string{"API"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTechnologies = %v, want %v", got, want)
	}
}

func TestDetectTechnologiesNoDuplicates(t *testing.T) {
	rows := []tabular.Row{
		titleRow("Kafka consumer rework"),
		titleRow("Kafka producer batching"),
	}
	got := DetectTechnologies(rows)
	want := []string{"Kafka"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTechnologies = %v, want %v", got, want)
	}
}

func TestDetectTechnologiesEmpty(t *testing.T) {
	got := DetectTechnologies(nil)
	if len(got) != 0 {
		t.Errorf("DetectTechnologies(nil) = %v, want empty", got)
	}
}
