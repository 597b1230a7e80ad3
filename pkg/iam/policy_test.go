package iam

import (
	"testing"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
	"github.com/stretchr/testify/assert"
)

func TestSingleBindingPolicy(t *testing.T) {
	policy := SingleBindingPolicy("user:a@example.com", "roles/viewer")
	assert.Equal(t, []cloudiot.Binding{
		{Role: "roles/viewer", Members: []string{"user:a@example.com"}},
	}, policy.Bindings)
}

func TestFormatBinding(t *testing.T) {
	tests := []struct {
		name    string
		binding cloudiot.Binding
		want    string
	}{
		{
			name:    "first member only",
			binding: cloudiot.Binding{Role: "roles/editor", Members: []string{"user:a@example.com", "user:b@example.com"}},
			want:    "Role: roles/editor Member: user:a@example.com",
		},
		{
			name:    "no members",
			binding: cloudiot.Binding{Role: "roles/owner"},
			want:    "Role: roles/owner Member: ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBinding(tt.binding))
		})
	}
}
