package session

import jsoniter "github.com/json-iterator/go"

var fastjson = jsoniter.ConfigCompatibleWithStandardLibrary

func fastMarshal(v any) ([]byte, error)   { return fastjson.Marshal(v) }
func fastUnmarshal(b []byte, v any) error { return fastjson.Unmarshal(b, v) }
