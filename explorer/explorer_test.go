package explorer_test

import (
	"github.com/lightlink-network/dai-tracker/explorer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	hash    = "0x5e2a1ad5fb3e1ee5d2f8d9e5f1c1b2a3d4e5f60718293a4b5c6d7e8f90a1b2c3"
	address = "0x6b175474e89094c44da98b954eedeac495271d0f"
)

var _ = Describe("TxHash", func() {
	DescribeTable("extracts the part before the separator",
		func(id, expected string) {
			Expect(explorer.TxHash(id)).To(Equal(expected))
		},
		Entry("hash and log index", hash+"-12", hash),
		Entry("several separators", hash+"-1-2", hash),
		Entry("no separator", hash, hash),
		Entry("empty", "", ""),
	)
})

var _ = Describe("Explorer", func() {
	var e *explorer.Explorer

	BeforeEach(func() {
		var err error
		e, err = explorer.New("")
		Expect(err).ToNot(HaveOccurred())
	})

	It("links addresses", func() {
		Expect(e.AddressURL(address)).To(Equal("https://etherscan.io/address/" + address))
	})

	It("does not link values that are not addresses", func() {
		Expect(e.AddressURL("not-an-address")).To(BeEmpty())
	})

	It("links the transaction of a transfer id", func() {
		Expect(e.TxURL(hash + "-3")).To(Equal("https://etherscan.io/tx/" + hash))
		Expect(e.TxURL("")).To(BeEmpty())
	})

	It("accepts a custom explorer with a trailing slash", func() {
		custom, err := explorer.New("https://sepolia.etherscan.io/")
		Expect(err).ToNot(HaveOccurred())
		Expect(custom.AddressURL(address)).To(Equal("https://sepolia.etherscan.io/address/" + address))
	})

	DescribeTable("rejects invalid base urls",
		func(base string) {
			_, err := explorer.New(base)
			Expect(err).To(HaveOccurred())
		},
		Entry("no scheme", "etherscan.io"),
		Entry("unsupported scheme", "ftp://etherscan.io"),
		Entry("unparseable", "http://[::1"),
	)
})
