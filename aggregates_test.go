package qfxconvert_test

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/qfxconvert"
)

var _ = Describe("aggregates", func() {
	Describe("GetAggregates()", func() {
		It("should return the singleton instance.", func() {
			i1 := qfxconvert.GetAggregates()
			i2 := qfxconvert.GetAggregates()
			Expect(i1).NotTo(BeNil())
			Expect(i2).NotTo(BeNil())
			Expect(reflect.ValueOf(i1).Pointer()).To(Equal(reflect.ValueOf(i2).Pointer()))
		})
	})
	Describe("IsAggregate()", func() {
		Context("when given an element name", func() {
			DescribeTable("should return true if the element is aggregate", func(name string, expected bool) {
				Expect(qfxconvert.IsAggregate(name)).To(Equal(expected))
			},
				Entry("OFX", "OFX", true),
				Entry("SIGNONMSGSRSV1", "SIGNONMSGSRSV1", true),
				Entry("SONRS", "SONRS", true),
				Entry("STATUS", "STATUS", true),
				Entry("FI", "FI", true),
				Entry("BANKMSGSRSV1", "BANKMSGSRSV1", true),
				Entry("STMTTRNRS", "STMTTRNRS", true),
				Entry("STMTRS", "STMTRS", true),
				Entry("BANKACCTFROM", "BANKACCTFROM", true),
				Entry("BANKTRANLIST", "BANKTRANLIST", true),
				Entry("STMTTRN", "STMTTRN", true),
				Entry("LEDGERBAL", "LEDGERBAL", true),
				Entry("AVAILBAL", "AVAILBAL", true),
				Entry("CURRENCY", "CURRENCY", true),
				Entry("INVSTMTMSGSRSV1", "INVSTMTMSGSRSV1", true),
				Entry("INVSTMTTRNRS", "INVSTMTTRNRS", true),
				Entry("INVSTMTRS", "INVSTMTRS", true),
				Entry("INVACCTFROM", "INVACCTFROM", true),
				Entry("INVTRANLIST", "INVTRANLIST", true),
				Entry("INVBANKTRAN", "INVBANKTRAN", true),
				Entry("INVBAL", "INVBAL", true),
				Entry("INVPOSLIST", "INVPOSLIST", true),
				Entry("INVPOS", "INVPOS", true),
				Entry("SECID", "SECID", true),
				Entry("POSSTOCK", "POSSTOCK", true),
				Entry("POSMF", "POSMF", true),
				Entry("POSDEBT", "POSDEBT", true),
				Entry("POSOPT", "POSOPT", true),
				Entry("POSOTHER", "POSOTHER", true),

				Entry("CODE", "CODE", false),
				Entry("SEVERITY", "SEVERITY", false),
				Entry("UNIQUEID", "UNIQUEID", false),
				Entry("DEFAULT", "DEFAULT", false),
			)
		})
	})
})
