package model

// Package model defines domain data structures used across the app: board
// items, axis configuration, and the board aggregate. Structures are designed
// for direct binding in the UI and for JSON persistence of a whole board.
