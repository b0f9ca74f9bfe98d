package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name   string
		want   bool
		reason string
	}{
		{"bar", true, ""},
		{"bar_2go", true, ""},
		{"a", true, ""},
		{"foo_bar_baz", true, ""},
		{"", false, "must not be empty"},
		{"2bar", false, "must start with a lowercase letter"},
		{"_bar", false, "must start with a lowercase letter"},
		{"bar bza", false, "must not contain whitespace"},
		{"bar\t", false, "must not contain whitespace"},
		{"bar-bza", false, "must not contain hyphens"},
		{"BAR", false, "must not contain uppercase letters"},
		{"barFoo", false, "must not contain uppercase letters"},
		{"bar.baz", false, "must only contain lowercase letters, digits and underscores"},
		{"bär", false, "must only contain lowercase letters, digits and underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.name))
			assert.Equal(t, tt.reason, NameViolation(tt.name))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"foo@bar.com", true},
		{"foo[at]bar.com", true},
		{"foo@", true},
		{"first.last+tag@example.org", true},
		{"foo bar.com", false},
		{"foo<bar.com", false},
		{"foo@bar.com>", false},
		{"foo @bar.com", false},
		{"foo\v@bar.com", false},
		{"foo\u0085@bar.com", false},
		{"foo@bar\u2028.com", false},
		{"foobar.com", false},
		{"foo(at)bar.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"0.0.0", true},
		{"1.2.3", true},
		{"10.20.30", true},
		{"", false},
		{"1.2", false},
		{"1", false},
		{"v1.2.3", false},
		{"1.2.3-alpha", false},
		{"1.2.3+build", false},
		{"1.2.3.4", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidVersion(tt.version))
		})
	}
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("1"))
	assert.True(t, IsSupportedFormat("2"))
	assert.False(t, IsSupportedFormat("0"))
	assert.False(t, IsSupportedFormat("one"))
}
