package leetcode

// StatusSuccess is the in-band status flag for a good response
const StatusSuccess = "success"

// MaxResponseBytes caps how much of a feed response is read
const MaxResponseBytes = 1 << 20
