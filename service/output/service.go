// Package output renders the per-run collection summary to the console.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/aws-netdoc/service/network"
	"github.com/thirukguru/aws-netdoc/utils/spinner"
)

// NewService creates a new output service with the specified format.
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format: f,
		out:    os.Stdout,
	}
}

func (s *service) StopSpinner() {
	spinner.StopSpinner()
}

func (s *service) RenderSummary(doc network.Documentation, dest Destination) error {
	if s.format == FormatJSON {
		return s.renderJSON(doc, dest)
	}
	s.renderTable(doc, dest)
	return nil
}

type accountSummary struct {
	AccountID string `json:"account_id"`
	Regions   int    `json:"regions"`
	Resources int    `json:"resources"`
	// Documented is false when role assumption failed and the account
	// contributed an empty entry.
	Documented bool `json:"documented"`
}

type runSummary struct {
	Accounts    []accountSummary `json:"accounts"`
	Destination string           `json:"destination"`
	Uploaded    bool             `json:"uploaded"`
}

func (s *service) renderJSON(doc network.Documentation, dest Destination) error {
	summary := runSummary{
		Accounts:    summarize(doc),
		Destination: fmt.Sprintf("s3://%s/%s", dest.Bucket, dest.Key),
		Uploaded:    dest.Uploaded,
	}

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

func (s *service) renderTable(doc network.Documentation, dest Destination) {
	fmt.Fprintf(s.out, "\n🌐 Network Documentation: %d account(s)\n", len(doc))

	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"Account", "Regions", "VPCs", "Subnets", "Security Groups", "Network ACLs", "Route Tables", "Endpoints", "Peerings", "Load Balancers"})

	for _, accountID := range sortedAccountIDs(doc) {
		regions := doc[accountID]
		if len(regions) == 0 {
			t.AppendRow(table.Row{accountID, text.FgYellow.Sprint("no credentials"), 0, 0, 0, 0, 0, 0, 0, 0})
			continue
		}

		var c [8]int
		for _, inv := range regions {
			c[0] += len(inv.Vpcs)
			c[1] += len(inv.Subnets)
			c[2] += len(inv.SecurityGroups)
			c[3] += len(inv.NetworkAcls)
			c[4] += len(inv.RouteTables)
			c[5] += len(inv.VpcEndpoints)
			c[6] += len(inv.VpcPeeringConnections)
			c[7] += len(inv.LoadBalancers)
		}
		t.AppendRow(table.Row{accountID, len(regions), c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7]})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	if dest.Uploaded {
		fmt.Fprintf(s.out, "Documentation stored at s3://%s/%s\n", dest.Bucket, dest.Key)
	} else {
		fmt.Fprintf(s.out, "Dry run: documentation was not uploaded (target s3://%s/%s)\n", dest.Bucket, dest.Key)
	}
}

func summarize(doc network.Documentation) []accountSummary {
	summaries := make([]accountSummary, 0, len(doc))
	for _, accountID := range sortedAccountIDs(doc) {
		regions := doc[accountID]
		total := 0
		for _, inv := range regions {
			total += len(inv.Vpcs) + len(inv.Subnets) + len(inv.SecurityGroups) +
				len(inv.NetworkAcls) + len(inv.RouteTables) + len(inv.VpcEndpoints) +
				len(inv.VpcPeeringConnections) + len(inv.LoadBalancers)
		}
		summaries = append(summaries, accountSummary{
			AccountID:  accountID,
			Regions:    len(regions),
			Resources:  total,
			Documented: len(regions) > 0,
		})
	}
	return summaries
}

func sortedAccountIDs(doc network.Documentation) []string {
	ids := make([]string, 0, len(doc))
	for id := range doc {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
