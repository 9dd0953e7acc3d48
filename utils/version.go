package utils

const REVISION string = "0.3.1"
