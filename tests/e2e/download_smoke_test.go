//go:build e2e

package e2e_test

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("download server smoke", func() {
	var cli *resty.Client

	ginkgo.BeforeEach(func() {
		cli = resty.New().SetBaseURL(Config.Endpoint)
	})

	expectDownloadHeaders := func(resp *resty.Response) {
		gomega.Expect(resp.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("*"))
		gomega.Expect(resp.Header().Get("Access-Control-Allow-Methods")).To(gomega.Equal("GET, OPTIONS"))
		gomega.Expect(resp.Header().Get("Cache-Control")).To(gomega.Equal("no-store, no-cache, must-revalidate"))
	}

	ginkgo.It("renders the index page with every configured archive", func() {
		resp, err := cli.R().Get("/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Header().Get("Content-Type")).To(gomega.HavePrefix("text/html"))
		expectDownloadHeaders(resp)

		page := string(resp.Body())
		for _, name := range Config.Archives {
			gomega.Expect(page).To(gomega.ContainSubstring(name))
		}
		gomega.Expect(page).To(gomega.ContainSubstring("MB"))
	})

	ginkgo.It("renders the same index twice in a row", func() {
		first, err := cli.R().Get("/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		second, err := cli.R().Get("/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(second.Body()).To(gomega.Equal(first.Body()))
	})

	ginkgo.It("responds 404 with download headers for unknown paths", func() {
		resp, err := cli.R().Get("/definitely-missing.txt")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).To(gomega.Equal(http.StatusNotFound))
		expectDownloadHeaders(resp)
	})
})
