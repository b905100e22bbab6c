package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// apiClient talks to the voucherpost HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

// apiError is a non-2xx response from the API.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("request failed (status %d): %s", e.Status, truncate(e.Body, 500))
}

// do sends body as JSON and returns the raw response body. Mutating requests
// carry an Idempotency-Key, generated when key is empty.
func (c *apiClient) do(method, path string, body any, key string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		if key == "" {
			key = uuid.NewString()
		}
		req.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{Status: resp.StatusCode, Body: string(out)}
	}
	return out, nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		idemKey string
	)
	client := &apiClient{}

	rootCmd := &cobra.Command{
		Use:           "voucherpost-cli",
		Short:         "Voucherpost CLI tool",
		Long:          `A command line interface for posting and approving vouchers through the voucherpost API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client.baseURL = baseURL
			client.http = &http.Client{Timeout: timeout}
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the voucherpost API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&idemKey, "idempotency-key", "", "Idempotency-Key for POST requests (random when empty)")

	rootCmd.AddCommand(
		newVoucherCmd(client, out, &idemKey),
		newWorkflowCmd(client, out, &idemKey),
		newRatesCmd(client, out),
		newBillsCmd(client, out),
	)
	return rootCmd
}

func newVoucherCmd(client *apiClient, out io.Writer, idemKey *string) *cobra.Command {
	voucherCmd := &cobra.Command{
		Use:   "voucher",
		Short: "Voucher operations",
	}

	var postFile string
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a voucher from a JSON request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readJSONFile(postFile)
			if err != nil {
				return err
			}
			resp, err := client.do(http.MethodPost, "/api/v1/vouchers", body, *idemKey)
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}
	postCmd.Flags().StringVarP(&postFile, "file", "f", "", "Path to the voucher request JSON")
	_ = postCmd.MarkFlagRequired("file")

	var validateFile string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that voucher lines balance without posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readJSONFile(validateFile)
			if err != nil {
				return err
			}
			resp, err := client.do(http.MethodPost, "/api/v1/vouchers/validate", body, *idemKey)
			if err != nil {
				return err
			}

			var result struct {
				Valid bool    `json:"valid"`
				Error string  `json:"error"`
				Delta *string `json:"delta"`
			}
			if err := json.Unmarshal(resp, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			if result.Valid {
				fmt.Fprintln(out, "Voucher is balanced")
				return nil
			}
			fmt.Fprintf(out, "Voucher is NOT valid: %s\n", result.Error)
			if result.Delta != nil {
				fmt.Fprintf(out, "Delta: %s\n", *result.Delta)
			}
			return fmt.Errorf("validation failed")
		},
	}
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the lines JSON")
	_ = validateCmd.MarkFlagRequired("file")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.do(http.MethodGet, "/api/v1/vouchers/"+url.PathEscape(args[0]), nil, "")
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}

	var (
		listType   string
		listLimit  int
		listOffset int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if listType != "" {
				q.Set("type", listType)
			}
			q.Set("limit", strconv.Itoa(listLimit))
			q.Set("offset", strconv.Itoa(listOffset))

			resp, err := client.do(http.MethodGet, "/api/v1/vouchers?"+q.Encode(), nil, "")
			if err != nil {
				return err
			}

			var vouchers []voucherRow
			if err := json.Unmarshal(resp, &vouchers); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printVoucherTable(out, vouchers)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listType, "type", "", "Voucher type (JV, PV, RV, CV)")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Page offset")

	voucherCmd.AddCommand(postCmd, validateCmd, getCmd, listCmd)
	return voucherCmd
}

func newWorkflowCmd(client *apiClient, out io.Writer, idemKey *string) *cobra.Command {
	workflowCmd := &cobra.Command{
		Use:   "workflow",
		Short: "Approval workflow operations",
	}

	var forwardedBy, assignee string
	forwardCmd := &cobra.Command{
		Use:   "forward <voucher-id>",
		Short: "Forward a voucher for approval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"forwarded_by": forwardedBy, "assignee_id": assignee}
			resp, err := client.do(http.MethodPost, "/api/v1/vouchers/"+url.PathEscape(args[0])+"/forward", body, *idemKey)
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}
	forwardCmd.Flags().StringVar(&forwardedBy, "by", "", "User forwarding the voucher")
	forwardCmd.Flags().StringVar(&assignee, "assignee", "", "Approver to assign (defaults to the first step approver)")
	_ = forwardCmd.MarkFlagRequired("by")

	var approver, decision, next, comment string
	decideCmd := &cobra.Command{
		Use:   "decide <voucher-id>",
		Short: "Record an approve, reject or return decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"approver_id":      approver,
				"decision":         decision,
				"next_assignee_id": next,
				"comment":          comment,
			}
			resp, err := client.do(http.MethodPost, "/api/v1/vouchers/"+url.PathEscape(args[0])+"/decisions", body, *idemKey)
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}
	decideCmd.Flags().StringVar(&approver, "approver", "", "Approver recording the decision")
	decideCmd.Flags().StringVar(&decision, "decision", "approve", "approve, reject or return")
	decideCmd.Flags().StringVar(&next, "next", "", "Next approver when more steps remain")
	decideCmd.Flags().StringVar(&comment, "comment", "", "Decision comment")
	_ = decideCmd.MarkFlagRequired("approver")

	stateCmd := &cobra.Command{
		Use:   "state <voucher-id>",
		Short: "Show the approval state of a voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.do(http.MethodGet, "/api/v1/vouchers/"+url.PathEscape(args[0])+"/approval", nil, "")
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}

	workflowCmd.AddCommand(forwardCmd, decideCmd, stateCmd)
	return workflowCmd
}

func newRatesCmd(client *apiClient, out io.Writer) *cobra.Command {
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Exchange rate lookups",
	}

	var from, to, date, fallback string
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the rate from one currency to another on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{"from": {from}, "to": {to}}
			if date != "" {
				q.Set("date", date)
			}
			if fallback != "" {
				q.Set("default", fallback)
			}
			resp, err := client.do(http.MethodGet, "/api/v1/rates/resolve?"+q.Encode(), nil, "")
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}
	resolveCmd.Flags().StringVar(&from, "from", "", "Source currency")
	resolveCmd.Flags().StringVar(&to, "to", "", "Target currency")
	resolveCmd.Flags().StringVar(&date, "date", "", "Effective date (YYYY-MM-DD, defaults to today)")
	resolveCmd.Flags().StringVar(&fallback, "default", "", "Rate to use when none is on file")
	_ = resolveCmd.MarkFlagRequired("from")
	_ = resolveCmd.MarkFlagRequired("to")

	ratesCmd.AddCommand(resolveCmd)
	return ratesCmd
}

func newBillsCmd(client *apiClient, out io.Writer) *cobra.Command {
	billsCmd := &cobra.Command{
		Use:   "bills",
		Short: "Outstanding bill operations",
	}

	listCmd := &cobra.Command{
		Use:   "list <party-id>",
		Short: "List outstanding bills of a party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.do(http.MethodGet, "/api/v1/parties/"+url.PathEscape(args[0])+"/bills", nil, "")
			if err != nil {
				return err
			}
			return printRaw(out, resp)
		},
	}

	billsCmd.AddCommand(listCmd)
	return billsCmd
}

type voucherRow struct {
	ID          string `json:"id"`
	VoucherType string `json:"voucher_type"`
	VoucherNo   string `json:"voucher_no"`
	VoucherDate string `json:"voucher_date"`
	Narration   string `json:"narration"`
	TotalDebit  string `json:"total_debit"`
	Status      string `json:"status"`
}

func printVoucherTable(out io.Writer, vouchers []voucherRow) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tTYPE\tDATE\tAMOUNT\tSTATUS\tNARRATION")
	for _, v := range vouchers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.VoucherNo, v.VoucherType, v.VoucherDate, v.TotalDebit, v.Status, truncate(v.Narration, 40))
	}
	_ = tw.Flush()
}

func readJSONFile(path string) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%s does not contain valid JSON", path)
	}
	return json.RawMessage(raw), nil
}

// printRaw re-indents a JSON response body.
func printRaw(out io.Writer, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return printJSON(out, v)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
