package common

const VERSION = "0.3.0"
