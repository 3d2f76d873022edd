package mock

import "github.com/ttys0dev/juriscraper"

var _ juriscraper.Body = (*Body)(nil)

// Body is a mock implementation of juriscraper.Body.
type Body struct {
	TextFn               func() string
	ContainsFn           func(marker string) bool
	DocketBlocksFn       func() []juriscraper.DocketBlock
	AttachmentCountFn    func() int
	FooterDescriptionFn  func() string
	RecipientLinesFn     func(appellate bool) ([]string, bool)
	RecipientBlockTextFn func(appellate bool) string
}

func (b *Body) Text() string {
	return b.TextFn()
}

func (b *Body) Contains(marker string) bool {
	return b.ContainsFn(marker)
}

func (b *Body) DocketBlocks() []juriscraper.DocketBlock {
	return b.DocketBlocksFn()
}

func (b *Body) AttachmentCount() int {
	return b.AttachmentCountFn()
}

func (b *Body) FooterDescription() string {
	return b.FooterDescriptionFn()
}

func (b *Body) RecipientLines(appellate bool) ([]string, bool) {
	return b.RecipientLinesFn(appellate)
}

func (b *Body) RecipientBlockText(appellate bool) string {
	return b.RecipientBlockTextFn(appellate)
}

var _ juriscraper.DocketBlock = (*DocketBlock)(nil)

// DocketBlock is a mock implementation of juriscraper.DocketBlock.
type DocketBlock struct {
	CaseNamesFn              func() []string
	DocketNumberCandidatesFn func(appellate bool) []string
	DescriptionFn            func(appellate bool) (string, bool)
	DocumentLinkFn           func(appellate bool) (string, bool)
	DocumentNumberTextFn     func() (string, bool)
	CaseLinkFn               func() (string, bool)
}

func (d *DocketBlock) CaseNames() []string {
	return d.CaseNamesFn()
}

func (d *DocketBlock) DocketNumberCandidates(appellate bool) []string {
	return d.DocketNumberCandidatesFn(appellate)
}

func (d *DocketBlock) Description(appellate bool) (string, bool) {
	return d.DescriptionFn(appellate)
}

func (d *DocketBlock) DocumentLink(appellate bool) (string, bool) {
	return d.DocumentLinkFn(appellate)
}

func (d *DocketBlock) DocumentNumberText() (string, bool) {
	return d.DocumentNumberTextFn()
}

func (d *DocketBlock) CaseLink() (string, bool) {
	return d.CaseLinkFn()
}
