package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/shiroyk/biscuit/cookie"
	"github.com/spf13/cobra"
)

const cookiePrefix = "cookie:"

var parseSorted bool

var parseCmd = &cobra.Command{
	Use:   "parse [header...]",
	Short: "parse Cookie header values and print the cookies as JSON",
	Long: `Parse Cookie header values and print the cookies as JSON.
Reads one header value per line from stdin if no header is given or the header is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return parse(cmd.OutOrStdout(), cmd.InOrStdin(), args, parseSorted)
	},
}

func parse(w io.Writer, r io.Reader, headers []string, sorted bool) error {
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "-") {
		var err error
		if headers, err = readHeaders(r); err != nil {
			return err
		}
	}
	for i, header := range headers {
		if len(header) >= len(cookiePrefix) && strings.EqualFold(header[:len(cookiePrefix)], cookiePrefix) {
			headers[i] = header[len(cookiePrefix):]
		}
	}

	cookies := cookie.Parse(headers...)
	result := cookies.All()
	if sorted {
		byName := make(map[string]*cookie.Cookie, len(result))
		for _, c := range result {
			byName[c.Name] = c
		}
		result = make([]*cookie.Cookie, 0, len(byName))
		for _, name := range cookies.Sorted() {
			result = append(result, byName[name])
		}
	}
	if result == nil {
		result = []*cookie.Cookie{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(result)
}

func readHeaders(r io.Reader) (headers []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			headers = append(headers, line)
		}
	}
	return headers, scanner.Err()
}

func init() {
	parseCmd.Flags().BoolVarP(&parseSorted, "sorted", "s", false, "order the cookies by name")
	rootCmd.AddCommand(parseCmd)
}
