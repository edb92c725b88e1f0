package reduction

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestTranslatorVarNameIsCanonical(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(translatorVarName(3, 1, 2)).To(Equal("x_[(1,3),2]"))
	g.Expect(translatorVarName(1, 3, 2)).To(Equal(translatorVarName(3, 1, 2)))
}

func TestVariableFamiliesCannotCollide(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(parentVarName(1, 2)).To(Equal("p_[1,2]"))
	g.Expect(levelVarName(1, 2)).To(Equal("l_[1,2]"))
	g.Expect(parentVarName(1, 2)).ToNot(Equal(levelVarName(1, 2)))
	g.Expect(parentVarName(2, 1)).ToNot(Equal(parentVarName(1, 2)))
}
