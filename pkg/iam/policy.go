package iam

import (
	"fmt"

	"github.com/iotcore-tools/iotctl/pkg/cloudiot"
)

// SingleBindingPolicy returns a policy holding exactly one binding of role
// to member. Setting it replaces every existing binding on the resource.
func SingleBindingPolicy(member, role string) *cloudiot.Policy {
	return &cloudiot.Policy{
		Bindings: []cloudiot.Binding{
			{
				Role:    role,
				Members: []string{member},
			},
		},
	}
}

// FormatBinding renders a binding with its first member only.
func FormatBinding(b cloudiot.Binding) string {
	var member string
	if len(b.Members) > 0 {
		member = b.Members[0]
	}
	return fmt.Sprintf("Role: %s Member: %s", b.Role, member)
}
