package handlers

import jsoniter "github.com/json-iterator/go"

var fastjson = jsoniter.ConfigCompatibleWithStandardLibrary

func jsonUnmarshal(b []byte, v any) error { return fastjson.Unmarshal(b, v) }
