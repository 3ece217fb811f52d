// meta/meta.go
package meta

import "time"

// MAX_TURNS caps an automated game; the side to move forfeits when it is reached.
const MAX_TURNS = 300

// BOT_DELAY is the pause between automated moves when a presentation layer is watching.
const BOT_DELAY = 800 * time.Millisecond

// UPDATE_BUFFER is the capacity of a table's update feed.
const UPDATE_BUFFER = 64

// GAMES is the default number of games in a match series.
const GAMES = 30

const SERVICE_NAME = "draughts"
