package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlanType(t *testing.T) {
	assert.Equal(t, PlanMonthly, NormalizePlanType(""))
	assert.Equal(t, PlanMonthly, NormalizePlanType("  Monthly "))
	assert.Equal(t, PlanOnDemand, NormalizePlanType("ON_DEMAND"))
	assert.Equal(t, PlanType("premium"), NormalizePlanType("Premium"))
}
