package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlog_MutableBy(t *testing.T) {
	owner := NewID()
	other := NewID()

	tests := []struct {
		name   string
		blog   Blog
		caller ID
		want   bool
	}{
		{
			name:   "owner may mutate",
			blog:   Blog{OwnerID: owner},
			caller: owner,
			want:   true,
		},
		{
			name:   "non-owner may not mutate",
			blog:   Blog{OwnerID: owner},
			caller: other,
			want:   false,
		},
		{
			name:   "ownerless blog mutable by anyone",
			blog:   Blog{},
			caller: other,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.blog.MutableBy(tt.caller))
		})
	}
}
