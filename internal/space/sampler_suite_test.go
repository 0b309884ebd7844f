package space

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSpaceSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Space Suite")
}

var _ = Describe("Sampler", func() {
	var (
		c   *Compound
		rng *rand.Rand
		s   *Sampler
	)

	BeforeEach(func() {
		c = NewCompound()
		Expect(c.AddSubspace(NewVector3Space(Unit()), 1.0)).To(Succeed())
		Expect(c.AddSubspace(NewSO3Space(), 1.0)).To(Succeed())
		rng = rand.New(rand.NewSource(42))
		s = NewSampler(c, rng)
	})

	It("keeps vector draws within bounds", func() {
		out := c.Alloc()
		for i := 0; i < 1000; i++ {
			s.Sample(out)
			Expect(c.SatisfiesBounds(out)).To(BeTrue())
		}
	})

	It("emits unit-norm orientations", func() {
		out := c.Alloc()
		for i := 0; i < 1000; i++ {
			s.Sample(out)
			q := out.Components[1].(*SO3).Q
			Expect(quatDot(q, q)).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("covers every octant of the box", func() {
		seen := make(map[[3]bool]int)
		out := c.Alloc()
		for i := 0; i < 2000; i++ {
			s.Sample(out)
			v := out.Components[0].(*Vec3).V
			seen[[3]bool{v.X > 0, v.Y > 0, v.Z > 0}]++
		}
		Expect(seen).To(HaveLen(8))
	})

	It("spreads rotation real parts across the sphere", func() {
		out := c.Alloc()
		sum := 0.0
		for i := 0; i < 4000; i++ {
			s.Sample(out)
			sum += math.Abs(out.Components[1].(*SO3).Q.Real)
		}
		// E|w| = 4/(3*pi) for the uniform distribution on S3.
		Expect(sum / 4000).To(BeNumerically("~", 4/(3*math.Pi), 0.05))
	})
})
