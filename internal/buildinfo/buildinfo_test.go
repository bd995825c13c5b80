package buildinfo

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestEncodeBuildNumber(t *testing.T) {
	tests := []struct {
		name    string
		minutes uint64
		want    string
	}{
		{"zero", 0, "00000"},
		{"single digit", 9, "00009"},
		{"highest single digit", 35, "0000Z"},
		{"first two-digit value", 36, "00010"},
		{"mixed digits", 36*36 + 10, "0010A"},
		{"widest unpadded value", 36*36*36*36*36 - 1, "ZZZZZ"},
		{"first rollover", 36 * 36 * 36 * 36 * 36, "00000"},
		{"rollover keeps low digits", 36*36*36*36*36 + 37, "00011"},
		{"max uint64", math.MaxUint64, strings.ToUpper(strconv.FormatUint(math.MaxUint64, 36)[8:])},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeBuildNumber(tt.minutes)
			if got != tt.want {
				t.Errorf("EncodeBuildNumber(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestEncodeBuildNumberShape(t *testing.T) {
	// Every output is exactly 5 characters drawn from 0-9A-Z, and for
	// wide inputs it matches the tail of the natural representation.
	inputs := []uint64{0, 1, 35, 36, 1234567, 29123456, math.MaxUint64 / 7, math.MaxUint64}
	for _, m := range inputs {
		got := EncodeBuildNumber(m)
		if len(got) != 5 {
			t.Fatalf("EncodeBuildNumber(%d) length = %d, want 5", m, len(got))
		}
		for i := 0; i < len(got); i++ {
			c := got[i]
			if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z') {
				t.Fatalf("EncodeBuildNumber(%d) = %q contains %q", m, got, c)
			}
		}

		natural := strings.ToUpper(strconv.FormatUint(m, 36))
		if len(natural) >= 5 {
			if want := natural[len(natural)-5:]; got != want {
				t.Errorf("EncodeBuildNumber(%d) = %q, want tail %q of %q", m, got, want, natural)
			}
		}
	}
}

func TestEpochSeconds(t *testing.T) {
	tests := []struct {
		name    string
		minutes uint64
		want    uint64
	}{
		{"zero", 0, 0},
		{"one minute", 1, 60},
		{"typical build time", 29123456, 29123456 * 60},
		{"last exact value", maxEpochMinutes, maxEpochMinutes * 60},
		{"just past boundary clamps", maxEpochMinutes + 1, math.MaxUint64},
		{"max clamps", math.MaxUint64, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := epochSeconds(tt.minutes); got != tt.want {
				t.Errorf("epochSeconds(%d) = %d, want %d", tt.minutes, got, tt.want)
			}
		})
	}
}

func noEnv(string) (string, bool) { return "", false }

func fixedNow() time.Time { return time.Unix(1747737600, 0) }

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		rawMinutes      string
		wantBuildNumber string
		wantMinutes     uint64
	}{
		{"injected minutes", "29123456", EncodeBuildNumber(29123456), 29123456},
		{"zero minutes", "0", "00000", 0},
		{"empty falls back to clock", "", EncodeBuildNumber(1747737600 / 60), 1747737600 / 60},
		{"garbage yields sentinel", "not-a-number", "00000", 0},
		{"negative yields sentinel", "-42", "00000", 0},
		{"fractional yields sentinel", "123.5", "00000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := resolve(tt.rawMinutes, "1.2.3", "abc123", noEnv, fixedNow)
			if info.BuildNumber != tt.wantBuildNumber {
				t.Errorf("BuildNumber = %q, want %q", info.BuildNumber, tt.wantBuildNumber)
			}
			if info.EpochMinutes != tt.wantMinutes {
				t.Errorf("EpochMinutes = %d, want %d", info.EpochMinutes, tt.wantMinutes)
			}
			if info.Epoch != tt.wantMinutes*60 {
				t.Errorf("Epoch = %d, want %d", info.Epoch, tt.wantMinutes*60)
			}
			if info.Semver != "1.2.3" {
				t.Errorf("Semver = %q, want %q", info.Semver, "1.2.3")
			}
			if info.GitSHA != "abc123" {
				t.Errorf("GitSHA = %q, want %q", info.GitSHA, "abc123")
			}
		})
	}
}

func TestResolveRevision(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		}
	}

	tests := []struct {
		name     string
		injected string
		vars     map[string]string
		want     string
	}{
		{"injected wins", "deadbeef", map[string]string{"GITHUB_SHA": "aaa", "GIT_COMMIT": "bbb"}, "deadbeef"},
		{"github sha preferred", "", map[string]string{"GITHUB_SHA": "aaa", "GIT_COMMIT": "bbb"}, "aaa"},
		{"git commit fallback", "", map[string]string{"GIT_COMMIT": "bbb"}, "bbb"},
		{"empty env var skipped", "", map[string]string{"GITHUB_SHA": "", "GIT_COMMIT": "bbb"}, "bbb"},
		{"nothing available", "", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRevision(tt.injected, env(tt.vars)); got != tt.want {
				t.Errorf("resolveRevision = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetIsStable(t *testing.T) {
	first := Get()
	second := Get()
	if first != second {
		t.Errorf("Get() returned different records: %+v vs %+v", first, second)
	}
	if len(first.BuildNumber) != 5 {
		t.Errorf("BuildNumber = %q, want 5 characters", first.BuildNumber)
	}
	if first.Epoch != first.EpochMinutes*60 {
		t.Errorf("Epoch = %d, want %d", first.Epoch, first.EpochMinutes*60)
	}
}

func TestInfoWireFieldNames(t *testing.T) {
	// Field names are part of the front-end wire contract.
	data, err := json.Marshal(Info{BuildNumber: "0000A", EpochMinutes: 10, Epoch: 600, Semver: "1.0.0", GitSHA: "abc"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, want := range []string{"buildNumber", "epochMinutes", "epoch", "semver", "gitSha"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("wire payload missing field %q, got %s", want, data)
		}
	}
	if len(fields) != 5 {
		t.Errorf("wire payload has %d fields, want 5: %s", len(fields), data)
	}
}
