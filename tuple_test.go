package tuplecmp_test

import (
	"github.com/alyapunov/tuplecmp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tuple", func() {
	var subject *tuplecmp.Tuple

	BeforeEach(func() {
		subject = tuplecmp.NewTuple(512)
	})

	It("should init", func() {
		Expect(subject.FieldCount()).To(Equal(0))
		Expect(subject.Cap()).To(Equal(512))
		Expect(subject.Size()).To(Equal(0))
	})

	It("should validate the indexed prefix size", func() {
		Expect(subject.Reset(1)).To(Succeed())
		Expect(subject.Reset(0)).To(MatchError(`tuplecmp: indexed prefix size must be >= 1, got 0`))
		Expect(subject.Reset(-3)).To(MatchError(`tuplecmp: indexed prefix size must be >= 1, got -3`))

		tiny := tuplecmp.NewTuple(8)
		Expect(tiny.Reset(16)).To(MatchError(tuplecmp.ErrTupleFull))
	})

	It("should append fields", func() {
		Expect(subject.Reset(2)).To(Succeed())
		Expect(subject.AppendUint(42)).To(Succeed())
		Expect(subject.AppendString([]byte("hello"))).To(Succeed())
		Expect(subject.AppendUint(300)).To(Succeed())

		Expect(subject.FieldCount()).To(Equal(3))
		// 4 slot bytes + 1 + 6 + 3 field bytes
		Expect(subject.Size()).To(Equal(14))
	})

	It("should store offsets for the indexed prefix", func() {
		Expect(subject.Reset(2)).To(Succeed())
		Expect(subject.AppendUint(42)).To(Succeed())
		Expect(subject.AppendString([]byte("hello"))).To(Succeed())

		// one 4-byte slot precedes the payload
		Expect(subject.FieldStart(0)).To(Equal(4))
		Expect(subject.Data()[4]).To(Equal(byte(42)))

		Expect(subject.FieldStart(1)).To(Equal(5))
		Expect(subject.Data()[5]).To(Equal(byte(0xa5)))

		_, err := subject.FieldStart(2)
		Expect(err).To(MatchError(tuplecmp.ErrFieldRange))
		_, err = subject.FieldStart(-1)
		Expect(err).To(MatchError(tuplecmp.ErrFieldRange))
	})

	It("should not index fields past the prefix", func() {
		Expect(subject.Reset(2)).To(Succeed())
		for i := 0; i < 4; i++ {
			Expect(subject.AppendUint(uint64(i))).To(Succeed())
		}

		Expect(subject.FieldStart(1)).To(Equal(5))
		_, err := subject.FieldStart(2)
		Expect(err).To(MatchError(tuplecmp.ErrFieldRange))
	})

	It("should decode fields", func() {
		Expect(subject.Reset(2)).To(Succeed())
		Expect(subject.AppendUint(42)).To(Succeed())
		Expect(subject.AppendString([]byte("hello"))).To(Succeed())
		Expect(subject.AppendUint(70000)).To(Succeed())
		Expect(subject.AppendString([]byte("world"))).To(Succeed())

		Expect(subject.UintField(0)).To(Equal(uint64(42)))
		Expect(subject.StringField(1)).To(Equal([]byte("hello")))

		// past the indexed prefix, reached by sequential decode
		Expect(subject.UintField(2)).To(Equal(uint64(70000)))
		Expect(subject.StringField(3)).To(Equal([]byte("world")))

		_, err := subject.UintField(4)
		Expect(err).To(MatchError(tuplecmp.ErrFieldRange))
	})

	It("should reject appends beyond capacity", func() {
		tiny := tuplecmp.NewTuple(6)
		Expect(tiny.AppendUint(1)).To(Succeed())
		Expect(tiny.AppendString([]byte("abcd"))).To(Succeed())
		Expect(tiny.AppendUint(2)).To(MatchError(tuplecmp.ErrTupleFull))
		Expect(tiny.AppendString([]byte("x"))).To(MatchError(tuplecmp.ErrTupleFull))

		// the failed appends must not count
		Expect(tiny.FieldCount()).To(Equal(2))
		Expect(tiny.Size()).To(Equal(6))
	})

	It("should rebuild after reset", func() {
		Expect(subject.Reset(3)).To(Succeed())
		Expect(subject.AppendUint(1)).To(Succeed())
		Expect(subject.AppendUint(2)).To(Succeed())
		Expect(subject.AppendUint(3)).To(Succeed())
		Expect(subject.FieldStart(0)).To(Equal(8))

		Expect(subject.Reset(1)).To(Succeed())
		Expect(subject.FieldCount()).To(Equal(0))
		Expect(subject.AppendString([]byte("fresh"))).To(Succeed())
		Expect(subject.FieldStart(0)).To(Equal(0))
		Expect(subject.StringField(0)).To(Equal([]byte("fresh")))
	})
})
