// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rusq/romeguide"
)

var testID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// runScript runs the demo for Rome with the scripted input and returns the
// output.
func runScript(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	d, err := New(romeguide.Rome(romeguide.WithSeed(42)), NewLinePrompter(strings.NewReader(input), &out), &out)
	require.NoError(t, err)
	d.newID = func() uuid.UUID { return testID }
	require.NoError(t, d.Run(t.Context()))
	return out.String()
}

func TestDemo_Run(t *testing.T) {
	t.Run("welcome and exit", func(t *testing.T) {
		out := runScript(t, "5\n")
		assert.Contains(t, out, "🏛️ Welcome to Rome! Let's explore the city together!")
		assert.Contains(t, out, "📍 Places you can visit in Rome:")
		assert.Contains(t, out, "   1. Colosseum (ancient)\n")
		assert.Contains(t, out, "   5. Spanish Steps (stairs)\n")
		assert.Contains(t, out, "🚶 How would you like to explore Rome today?")
		assert.Contains(t, out, "5. ❌ Exit")
		assert.Contains(t, out, "👋 Arrivederci! Thanks for visiting Rome!")
	})
	t.Run("phone app", func(t *testing.T) {
		// choice, count, two pauses between stops, return to menu, exit.
		out := runScript(t, "2\n3\n\n\n\n5\n")
		assert.Contains(t, out, "📱 Opening tourist app...")
		assert.Contains(t, out, "📱 App suggests: Colosseum (popular destination)")
		assert.Contains(t, out, "✅ Now visiting: Colosseum\n   Type: ancient\n   Stop: 1st of 3\n")
		assert.Contains(t, out, "✅ Now visiting: Vatican")
		assert.Contains(t, out, "✅ Now visiting: Trevi Fountain")
		assert.NotContains(t, out, "✅ Now visiting: Pantheon")
		assert.Equal(t, 2, strings.Count(out, "Press Enter to continue to next place..."))
		assert.Contains(t, out, "🎉 Tour complete! You visited 3 amazing places in Rome.\n   Tour id: "+testID.String()+"\n")
		assert.Contains(t, out, "Press Enter to return to main menu...")
		assert.Contains(t, out, "👋 Arrivederci!")

		// order.
		assert.Less(t, strings.Index(out, "Now visiting: Colosseum"), strings.Index(out, "Now visiting: Vatican"))
		assert.Less(t, strings.Index(out, "Now visiting: Vatican"), strings.Index(out, "Now visiting: Trevi Fountain"))
	})
	t.Run("local guide after invalid choices", func(t *testing.T) {
		out := runScript(t, "9\nabc\n3\n2\n\n\n5\n")
		assert.Equal(t, 2, strings.Count(out, msgInvalidChoice))
		assert.Contains(t, out, "🎭 Meeting your local guide...")
		assert.Contains(t, out, "🎭 Visit Colosseum - Visit early morning to avoid crowds!")
		assert.Contains(t, out, "🎭 Visit Vatican - The secret passage connects to Castel Sant'Angelo")
		assert.Contains(t, out, "🎉 Tour complete! You visited 2 amazing places in Rome.")
	})
	t.Run("random walk with invalid counts", func(t *testing.T) {
		out := runScript(t, "1\n0\nx\n7\n1\n\n5\n")
		assert.Contains(t, out, "🎲 Starting random walk...")
		assert.Equal(t, 2, strings.Count(out, "❌ Please enter a number between 1 and 5."))
		assert.Contains(t, out, msgNotANumber)
		assert.Contains(t, out, "🚶 Randomly found: ")
		assert.NotContains(t, out, "Press Enter to continue to next place...")
		assert.Contains(t, out, "🎉 Tour complete! You visited 1 amazing places in Rome.")
	})
	t.Run("compare", func(t *testing.T) {
		out := runScript(t, "4\n\n5\n")
		assert.Contains(t, out, "🔍 Comparing all three exploration methods...")
		assert.Contains(t, out, "🎲 Random Walk (Chaotic but adventurous!):")
		assert.Contains(t, out, "📱 Phone App (Efficient and popular spots first):")
		assert.Contains(t, out, "🎭 Local Guide (Insider knowledge and secrets):")
		assert.Equal(t, 3, strings.Count(out, "→ Visited 3 places"))
		assert.Equal(t, 3, strings.Count(out, "Randomly found: "))
		assert.Contains(t, out, "   📱 App suggests: Trevi Fountain (popular destination)\n")
		assert.NotContains(t, out, "App suggests: Pantheon")
		assert.Contains(t, out, "💡 Notice: Same Rome, completely different experiences!")
		assert.Contains(t, out, "Comparison id: "+testID.String())
	})
	t.Run("end of input", func(t *testing.T) {
		out := runScript(t, "2\n")
		assert.Contains(t, out, "How many places would you like to visit? (1-5): ")
		assert.NotContains(t, out, "Arrivederci")
	})
	t.Run("seeded random walks are reproducible", func(t *testing.T) {
		const input = "1\n5\n\n\n\n\n\n5\n"
		assert.Equal(t, runScript(t, input), runScript(t, input))
	})
}

func TestDemo_Run_mock(t *testing.T) {
	small := romeguide.NewCity("florence", []romeguide.Place{
		{Name: "Duomo", Category: "religious"},
		{Name: "Uffizi", Category: "museum"},
	})
	t.Run("count is limited by the city size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mp := newmockPrompter(ctrl)
		gomock.InOrder(
			mp.EXPECT().Menu(gomock.Any(), "🚶 How would you like to explore Florence today?", menuOptions).Return(chLocalGuide, nil),
			mp.EXPECT().Number(gomock.Any(), gomock.Any(), 1, 2).Return(2, nil),
			mp.EXPECT().Pause(gomock.Any(), "   Press Enter to continue to next place...").Return(nil),
			mp.EXPECT().Pause(gomock.Any(), "Press Enter to return to main menu...").Return(nil),
			mp.EXPECT().Menu(gomock.Any(), gomock.Any(), gomock.Any()).Return(chExit, nil),
		)
		var out bytes.Buffer
		d, err := New(small, mp, &out)
		require.NoError(t, err)
		require.NoError(t, d.Run(t.Context()))
		assert.Contains(t, out.String(), "Welcome to Florence!")
		assert.Contains(t, out.String(), "Visit Uffizi - Amazing place!")
	})
	t.Run("user abort exits cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mp := newmockPrompter(ctrl)
		mp.EXPECT().Menu(gomock.Any(), gomock.Any(), gomock.Any()).Return(chPhoneApp, nil)
		mp.EXPECT().Number(gomock.Any(), gomock.Any(), 1, 2).Return(0, huh.ErrUserAborted)

		d, err := New(small, mp, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NoError(t, d.Run(t.Context()))
	})
	t.Run("cancelled context exits cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mp := newmockPrompter(ctrl)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		d, err := New(small, mp, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NoError(t, d.Run(ctx))
	})
	t.Run("prompter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mp := newmockPrompter(ctrl)
		errBoom := errors.New("boom")
		mp.EXPECT().Menu(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errBoom)

		d, err := New(small, mp, &bytes.Buffer{})
		require.NoError(t, err)
		assert.ErrorIs(t, d.Run(t.Context()), errBoom)
	})
}

func TestNew(t *testing.T) {
	t.Run("empty city", func(t *testing.T) {
		_, err := New(romeguide.NewCity("Atlantis", nil), nil, &bytes.Buffer{})
		assert.ErrorIs(t, err, romeguide.ErrNoPlaces)
		var ce *romeguide.ConstructionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, romeguide.KRandomWalk, ce.Kind)
	})
	t.Run("nil city", func(t *testing.T) {
		_, err := New(nil, nil, &bytes.Buffer{})
		var ce *romeguide.ConstructionError
		assert.True(t, errors.As(err, &ce))
	})
	t.Run("tour id", func(t *testing.T) {
		d, err := New(romeguide.Rome(), nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NotEqual(t, d.newID(), d.newID())
	})
	t.Run("tourist", func(t *testing.T) {
		tourist, err := romeguide.NewTourist("Anna")
		require.NoError(t, err)
		d, err := New(romeguide.Rome(), nil, &bytes.Buffer{}, WithTourist(tourist), WithTourist(nil))
		require.NoError(t, err)
		assert.Equal(t, "Anna", d.tourist.Name())
	})
}
