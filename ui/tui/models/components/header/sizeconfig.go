package header

import (
	"github.com/showreelio/showreel/ui/tui/models/components/stack"
	"github.com/showreelio/showreel/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(model util.Model, _ int, total_size int) int {
	// collapse the header on very short terminals
	if total_size >= 12 {
		return 2
	}
	return 0
}
