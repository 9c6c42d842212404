package brandstore

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
)

// fakeReply mimics a valkey message: either an array or a scalar string.
type fakeReply struct {
	items  []fakeReply
	scalar string
	array  bool
}

func (f *fakeReply) ToArray() ([]fakeReply, error) {
	if !f.array {
		return nil, errors.New("not an array")
	}
	return f.items, nil
}

func (f *fakeReply) ToString() (string, error) {
	if f.array {
		return "", errors.New("not a string")
	}
	return f.scalar, nil
}

func (f *fakeReply) ToFloat64() (float64, error) {
	if f.array {
		return 0, errors.New("not a number")
	}
	return strconv.ParseFloat(f.scalar, 64)
}

func str(v string) fakeReply { return fakeReply{scalar: v} }

func arr(items ...fakeReply) fakeReply { return fakeReply{array: true, items: items} }

func TestParseScoredReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   []fakeReply
		want    []scoredMember
		wantErr string
	}{
		{
			name:  "empty",
			reply: nil,
			want:  []scoredMember{},
		},
		{
			name:  "resp2 flat",
			reply: []fakeReply{str("nike"), str("5"), str("patagonia"), str("2")},
			want:  []scoredMember{{member: "nike", score: 5}, {member: "patagonia", score: 2}},
		},
		{
			name:  "resp3 nested",
			reply: []fakeReply{arr(str("nike"), str("5")), arr(str("ac/dc"), str("1"))},
			want:  []scoredMember{{member: "nike", score: 5}, {member: "ac/dc", score: 1}},
		},
		{
			name:    "resp2 missing score",
			reply:   []fakeReply{str("nike"), str("5"), str("patagonia")},
			wantErr: "member 2 has no score",
		},
		{
			name:    "resp2 bad score",
			reply:   []fakeReply{str("nike"), str("many")},
			wantErr: "entry 0 score",
		},
		{
			name:    "resp3 short tuple",
			reply:   []fakeReply{arr(str("nike"))},
			wantErr: "entry 0 has 1 elements",
		},
		{
			name:    "resp3 bad score",
			reply:   []fakeReply{arr(str("nike"), arr())},
			wantErr: "entry 0 score",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScoredReply[fakeReply](tt.reply)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValkeyStoreKeys(t *testing.T) {
	store := NewValkeyStore(nil, "")
	require.Equal(t, "brand:trending", store.trendingKey())
	require.Equal(t, "brand:display:nike", store.displayKey("nike"))

	store = NewValkeyStore(nil, "ecolife:brand")
	require.Equal(t, "ecolife:brand:trending", store.trendingKey())
}

func TestDisplayWriteErr(t *testing.T) {
	require.NoError(t, displayWriteErr(nil))
	require.NoError(t, displayWriteErr(valkey.Nil), "existing display name keeps the first spelling")

	cause := errors.New("connection reset")
	err := displayWriteErr(cause)
	require.ErrorIs(t, err, cause)
	require.ErrorContains(t, err, "store brand display name")
}
