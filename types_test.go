package openpanel

import (
	"encoding/json"
	"testing"
)

func TestEnvelopeWireFormat(t *testing.T) {
	tests := []struct {
		name string
		env  envelope
		want string
	}{
		{
			name: "track",
			env: envelope{
				Type:    TypeTrack,
				Payload: Event{Name: "signup", Properties: Properties{"plan": "pro"}},
			},
			want: `{"type":"track","payload":{"name":"signup","properties":{"plan":"pro"}}}`,
		},
		{
			name: "identify",
			env: envelope{
				Type: TypeIdentify,
				Payload: IdentifyUser{
					ProfileID:  "p1",
					Email:      "a@b.c",
					FirstName:  "Ada",
					LastName:   "Lovelace",
					Properties: Properties{"plan": "pro"},
				},
			},
			want: `{"type":"identify","payload":{"profileId":"p1","email":"a@b.c","firstName":"Ada","lastName":"Lovelace","properties":{"plan":"pro"}}}`,
		},
		{
			name: "increment",
			env: envelope{
				Type:    TypeIncrement,
				Payload: PropertyDelta{ProfileID: "p1", Property: "logins", Value: 1},
			},
			want: `{"type":"increment","payload":{"profileId":"p1","property":"logins","value":1}}`,
		},
		{
			name: "decrement",
			env: envelope{
				Type:    TypeDecrement,
				Payload: PropertyDelta{ProfileID: "p1", Property: "credits", Value: 5},
			},
			want: `{"type":"decrement","payload":{"profileId":"p1","property":"credits","value":5}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.env)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("wire format mismatch:\n got %s\nwant %s", data, tt.want)
			}
		})
	}
}

func TestTrackTypeString(t *testing.T) {
	if TypeTrack.String() != "track" {
		t.Errorf("TypeTrack.String() = %q, want track", TypeTrack.String())
	}
}

func TestRevenueEventWireFormat(t *testing.T) {
	data, err := json.Marshal(envelope{
		Type: TypeTrack,
		Payload: revenueEvent{
			Name:       "revenue",
			Amount:     100,
			Properties: Properties{"amount": "100"},
		},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"type":"track","payload":{"name":"revenue","amount":100,"properties":{"amount":"100"}}}`
	if string(data) != want {
		t.Errorf("wire format mismatch:\n got %s\nwant %s", data, want)
	}
}
