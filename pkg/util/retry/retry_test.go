package retry

import (
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsFirstTry(t *testing.T) {
	attempts := 0
	err := Do(2, time.Millisecond, func() error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestDoRecoversWithinBudget(t *testing.T) {
	attempts := 0
	err := Do(2, time.Millisecond, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestDoExhaustsRetries(t *testing.T) {
	attempts := 0
	wantErr := errors.New("still down")
	err := Do(2, time.Millisecond, func() error {
		attempts++
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3 (initial try plus 2 retries)", attempts)
	}
}

func TestDoDelaysDouble(t *testing.T) {
	var stamps []time.Time
	_ = Do(2, 20*time.Millisecond, func() error {
		stamps = append(stamps, time.Now())
		return errors.New("nope")
	})
	if len(stamps) != 3 {
		t.Fatalf("attempts = %d, want 3", len(stamps))
	}
	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	if first < 20*time.Millisecond {
		t.Fatalf("first delay = %v, want >= 20ms", first)
	}
	if second < 40*time.Millisecond {
		t.Fatalf("second delay = %v, want >= 40ms", second)
	}
}
