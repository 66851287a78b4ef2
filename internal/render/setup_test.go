package render

import (
	"os"
	"testing"

	"shadowcrawl/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
