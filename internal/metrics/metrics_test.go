package metrics

import "testing"

func TestAggregate_SingleValue(t *testing.T) {
	m := Aggregate([]float64{7})
	if m.Min != 7 || m.Max != 7 || m.Mean != 7 || m.Count != 1 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestAggregate_NegativesFlowThrough(t *testing.T) {
	m := Aggregate([]float64{10, -3, 4})
	if m.Min != -3 {
		t.Errorf("expected min -3, got %f", m.Min)
	}
	if m.Max != 10 {
		t.Errorf("expected max 10, got %f", m.Max)
	}
	if m.Mean != 3.67 {
		t.Errorf("expected mean 3.67, got %f", m.Mean)
	}
}

func TestAggregate_WorkedExample(t *testing.T) {
	// Manual [10,20,30] concatenated with derived [12,2,1,0].
	m := Aggregate([]float64{10, 20, 30, 12, 2, 1, 0})
	if m.Min != 0 {
		t.Errorf("expected min 0, got %f", m.Min)
	}
	if m.Max != 30 {
		t.Errorf("expected max 30, got %f", m.Max)
	}
	if m.Mean != 10.71 {
		t.Errorf("expected mean 10.71, got %f", m.Mean)
	}
	if m.Count != 7 {
		t.Errorf("expected count 7, got %d", m.Count)
	}
}

func TestAggregate_MeanBetweenMinAndMax(t *testing.T) {
	cases := [][]float64{
		{1, 2, 3, 4, 5},
		{-10, 0, 10},
		{0.1, 0.2, 0.3},
		{-5, -4, -3},
	}
	for _, signals := range cases {
		m := Aggregate(signals)
		if m.Count != len(signals) {
			t.Errorf("count %d != len %d for %v", m.Count, len(signals), signals)
		}
		if m.Mean < m.Min || m.Mean > m.Max {
			t.Errorf("mean %f outside [%f, %f] for %v", m.Mean, m.Min, m.Max, signals)
		}
	}
}
