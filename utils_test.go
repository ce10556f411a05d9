package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smartystreets/goconvey/convey"
)

func TestCleanPastedName(t *testing.T) {
	convey.Convey("Given clipboard content", t, func() {
		convey.Convey("Then line breaks and tabs collapse to single spaces", func() {
			convey.So(cleanPastedName("  Best\r\n\tFriend \n"), convey.ShouldEqual, "Best Friend")
		})

		convey.Convey("Then control runes are dropped", func() {
			convey.So(cleanPastedName("Sa\x07m\x7f"), convey.ShouldEqual, "Sam")
		})

		convey.Convey("Then RTF markup is stripped", func() {
			convey.So(isRTF(`{\rtf1\ansi Sam}`), convey.ShouldBeTrue)
			convey.So(cleanPastedName(`{\rtf1\ansi\b Sam\b0 \{x\}}`), convey.ShouldEqual, "Sam {x}")
		})
	})
}

func TestWordNavigation(t *testing.T) {
	convey.Convey("Given a two word name", t, func() {
		m := readyModel(80, 24)
		m = typeText(m, "Best Friend")

		convey.Convey("When jumping back a word", func() {
			m = send(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
			convey.So(m.cursorPos, convey.ShouldEqual, 5)

			m = send(m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
			convey.So(m.cursorPos, convey.ShouldEqual, 0)

			convey.Convey("Then jumping forward lands on word ends", func() {
				m = send(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
				convey.So(m.cursorPos, convey.ShouldEqual, 4)
				m = send(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
				convey.So(m.cursorPos, convey.ShouldEqual, 11)
			})
		})
	})
}
