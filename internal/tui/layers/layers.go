// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil when content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateTopRightLayer anchors content to the top-right corner, one cell in
// from the edge
func CreateTopRightLayer(content string, screenWidth int, row int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max(screenWidth-lipgloss.Width(content)-1, 0)
	return lipgloss.NewLayer(content).X(x).Y(row)
}
