// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Julian-Bruyers/qrlan-cli/internal/wifi"
)

// prompter reads interactive answers line by line. It holds a single
// buffered reader so consecutive prompts never lose buffered input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// readLine prints the prompt and returns the trimmed answer.
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// manualSSID offers manual entry when no networks could be enumerated.
// It returns "" when the user declines.
func (p *prompter) manualSSID() (string, error) {
	choice, err := p.readLine("Would you like to enter the SSID manually? (y/N) ")
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(choice, "y") {
		return "", nil
	}
	return p.readLine("Enter the SSID: ")
}

// selectNetwork presents the enumerated networks and returns the chosen one.
// A single network is selected without asking.
func (p *prompter) selectNetwork(networks []wifi.Network) (wifi.Network, error) {
	if len(networks) == 1 {
		fmt.Fprintf(p.out, "Automatically selected the only available network: %s\n",
			HighlightStyle.Render(networks[0].SSID))
		return networks[0], nil
	}

	fmt.Fprintln(p.out, "Available Wi-Fi networks:")
	for i, network := range networks {
		fmt.Fprintf(p.out, "[%d]\t%s\n", i, network.SSID)
	}

	for {
		answer, err := p.readLine("\nPlease select a network by number to generate the QR code for: ")
		if err != nil {
			return wifi.Network{}, err
		}
		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 0 || idx >= len(networks) {
			fmt.Fprintln(p.out, ErrorStyle.Render(
				fmt.Sprintf("Invalid selection. Please enter a number between 0 and %d.", len(networks)-1)))
			continue
		}
		return networks[idx], nil
	}
}

// password asks for the network password; empty means an open network.
func (p *prompter) password(ssid string) (string, error) {
	return p.readLine(fmt.Sprintf("Enter the password for '%s' (leave empty for an open network): ", ssid))
}

// securityType asks for an explicit security type. The raw answer is
// interpreted by wifi.ResolveSecurity.
func (p *prompter) securityType() string {
	answer, err := p.readLine("Please enter the security type (e.g., WPA, WEP, or nopass if open; defaults to WPA): ")
	if err != nil {
		return ""
	}
	return answer
}

// title asks for an optional PDF title; empty falls back to the SSID.
func (p *prompter) title(ssid string) (string, error) {
	return p.readLine(fmt.Sprintf("Enter a title for the PDF (optional, press Enter to use SSID '%s'): ", ssid))
}

// fileName asks for an optional output file name.
func (p *prompter) fileName(defaultName, ext string) (string, error) {
	return p.readLine(fmt.Sprintf("Enter a filename (optional, press Enter to use '%s.%s'): ", defaultName, ext))
}
