package har2oas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version(), "development builds should report 'dev'")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "har2oas/dev", UserAgent())
}
