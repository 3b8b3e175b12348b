package main

const (
	size    = 24
	hudSize = 40
)
