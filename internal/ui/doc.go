// Package ui hosts the date coordinator in a Bubble Tea program.
//
// Keys drive SetDate with the update source each gesture stands for, the
// today button is drawn from the coordinator context, and every listener
// call lands in a scrolling notification log. Owner dates published to the
// state store are forwarded to the coordinator on each tick.
package ui
