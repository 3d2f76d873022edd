package parse

import (
	"regexp"
	"strings"

	"github.com/ttys0dev/juriscraper"
	"github.com/ttys0dev/juriscraper/strutil"
)

// recipients extracts the notified parties. Plain text messages use a
// line-oriented scan; HTML messages use the token strategy when the
// section embeds hyperlinks and the plain-line strategy otherwise.
func (p *Parser) recipients(ctx *parseContext) []juriscraper.Recipient {
	if ctx.msg.ContentType == juriscraper.ContentTypePlain {
		return p.plainTextRecipients(ctx)
	}

	lines, hasLinks := ctx.body.RecipientLines(ctx.appellate)
	if hasLinks {
		return p.tokenRecipients(ctx, ctx.body.RecipientBlockText(ctx.appellate))
	}
	if recipients := plainLineRecipients(lines); len(recipients) > 0 {
		return recipients
	}
	return p.tokenRecipients(ctx, strings.Join(lines, " "))
}

// plainLineRecipients parses self-contained recipient lines like
// "Stephen Breyer sbreyerguy52@hotmail.com, sbreyer@supremecourt.gov": the
// last whitespace token of the first comma part is the first address, the
// rest of that part is the name, and the remaining comma parts are
// additional addresses.
func plainLineRecipients(lines []string) []juriscraper.Recipient {
	var recipients []juriscraper.Recipient
	for _, line := range lines {
		if !strings.Contains(line, "@") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strutil.Clean(parts[i])
		}
		fields := strings.Fields(parts[0])
		if len(fields) == 0 {
			continue
		}
		addresses := []string{fields[len(fields)-1]}
		for _, part := range parts[1:] {
			if part != "" {
				addresses = append(addresses, part)
			}
		}
		recipients = append(recipients, juriscraper.Recipient{
			Name:           strings.Join(fields[:len(fields)-1], " "),
			EmailAddresses: addresses,
		})
	}
	return recipients
}

var (
	newlineRe      = regexp.MustCompile(`\n`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}|\t`)
	spacedCommaRe  = regexp.MustCompile(`\s,`)
	beforeMailedRe = regexp.MustCompile(`^.*mailed\sto:`)
)

// tokenRecipients parses the notified-parties block as a flat token
// stream. A token carrying "@" is an address for the current recipient; a
// token without one starts a new recipient's name unless the current
// recipient has no addresses yet, in which case it extends the name.
func (p *Parser) tokenRecipients(ctx *parseContext, text string) []juriscraper.Recipient {
	text = newlineRe.ReplaceAllString(text, "")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = spacedCommaRe.ReplaceAllString(text, "")
	text = beforeMailedRe.ReplaceAllString(text, "")
	// Everything from the first docket number on is boilerplate, not
	// recipients.
	for _, number := range ctx.docketNumbers {
		if number == "" {
			continue
		}
		re, err := regexp.Compile(regexp.QuoteMeta(number) + `.*$`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, "")
	}

	var drafts []juriscraper.Recipient
	for _, token := range strings.Split(strings.TrimSpace(text), " ") {
		hasAt := strings.Contains(token, "@")
		if len(drafts) == 0 {
			if !hasAt {
				drafts = append(drafts, juriscraper.Recipient{Name: token})
				continue
			}
			drafts = append(drafts, juriscraper.Recipient{})
		}
		last := &drafts[len(drafts)-1]
		switch {
		case hasAt:
			last.EmailAddresses = append(last.EmailAddresses, strings.ReplaceAll(token, ",", ""))
		case len(last.EmailAddresses) > 0:
			drafts = append(drafts, juriscraper.Recipient{Name: token})
		default:
			last.Name = strings.TrimSpace(last.Name + " " + token)
		}
	}

	var recipients []juriscraper.Recipient
	for _, r := range drafts {
		if len(r.EmailAddresses) > 0 {
			recipients = append(recipients, r)
		}
	}
	return recipients
}

const postalDeliveryMarker = "Notice will be delivered"

// plainTextRecipients scans the lines after the notified-parties marker:
// an "@" line holds the comma-separated addresses and the preceding line
// holds the name. Postal recipients follow the delivery marker and are
// skipped.
func (p *Parser) plainTextRecipients(ctx *parseContext) []juriscraper.Recipient {
	lines, _ := ctx.body.RecipientLines(false)

	var recipients []juriscraper.Recipient
	for i, line := range lines {
		if strings.Contains(line, "@") {
			parts := strings.Split(line, ",")
			addresses := make([]string, 0, len(parts))
			for _, part := range parts {
				if cleaned := strutil.Clean(part); cleaned != "" {
					addresses = append(addresses, cleaned)
				}
			}
			if len(addresses) == 0 {
				continue
			}
			var name string
			if i > 0 {
				name = strutil.Clean(lines[i-1])
			}
			recipients = append(recipients, juriscraper.Recipient{
				Name:           name,
				EmailAddresses: addresses,
			})
		}
		if strings.Contains(line, postalDeliveryMarker) {
			break
		}
	}
	return recipients
}
