package diag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnordski/SidingSignal/pkg/signal"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Status
		wantErr bool
	}{
		{
			name: "steady yellow, siding open",
			line: "73412,12,yellow,open",
			want: Status{
				Uptime: 73412 * time.Millisecond,
				Feet:   12,
				State:  signal.Yellow,
				Closed: false,
			},
		},
		{
			name: "red at the stop point, siding closed",
			line: "1000,0,red,closed",
			want: Status{
				Uptime: time.Second,
				Feet:   0,
				State:  signal.Red,
				Closed: true,
			},
		},
		{
			name: "measurement unavailable",
			line: "5000,-1,unavailable,open",
			want: Status{
				Uptime: 5 * time.Second,
				Feet:   -1,
				State:  signal.Unavailable,
				Closed: false,
			},
		},
		{
			name: "blank beyond the begin zone",
			line: "250,138,blank,open",
			want: Status{
				Uptime: 250 * time.Millisecond,
				Feet:   138,
				State:  signal.Blank,
				Closed: false,
			},
		},
		{name: "too few fields", line: "73412,12,yellow", wantErr: true},
		{name: "too many fields", line: "73412,12,yellow,open,extra", wantErr: true},
		{name: "bad uptime", line: "abc,12,yellow,open", wantErr: true},
		{name: "negative uptime", line: "-5,12,yellow,open", wantErr: true},
		{name: "bad distance", line: "73412,abc,yellow,open", wantErr: true},
		{name: "distance below sentinel", line: "73412,-2,yellow,open", wantErr: true},
		{name: "unknown state", line: "73412,12,purple,open", wantErr: true},
		{name: "unknown siding word", line: "73412,12,yellow,ajar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseState_RoundTrip(t *testing.T) {
	for _, st := range []signal.State{signal.Blank, signal.Green, signal.Yellow, signal.Red, signal.Unavailable} {
		got, ok := signal.ParseState(st.String())
		assert.True(t, ok, st.String())
		assert.Equal(t, st, got)
	}
	_, ok := signal.ParseState("unknown")
	assert.False(t, ok)
}
