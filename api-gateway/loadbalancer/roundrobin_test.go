package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("loadbalancer-test", false)
}

func TestRoundRobinCyclesThroughServers(t *testing.T) {
	lb := NewRoundRobin([]string{"http://a:8080", "http://b:8080"})

	assert.Equal(t, "http://a:8080", lb.Next())
	assert.Equal(t, "http://b:8080", lb.Next())
	assert.Equal(t, "http://a:8080", lb.Next())
}

func TestRoundRobinFallsBackToDefault(t *testing.T) {
	lb := NewRoundRobin(nil)

	assert.Equal(t, "http://localhost:8080", lb.Next())
}
