package types

//GetEntryReq get entry request body
type GetEntryReq struct {
	Key    string
	Prefix string
}

//GetEntryResp get entry response body
type GetEntryResp struct {
	Value string
	Found bool
}

//PutEntryReq put entry request body
type PutEntryReq struct {
	Key    string
	Value  string
	Prefix string
}

//RemoveEntryReq remove entry request body
type RemoveEntryReq struct {
	Key    string
	Prefix string
}

//AllEntriesReq list entries request body
type AllEntriesReq struct {
	Prefix string
}

//AllEntriesResp list entries response body
type AllEntriesResp struct {
	Entries map[string]interface{}
}

//WatchMeta key a watcher wants the value stream of
type WatchMeta struct {
	Key    string
	Prefix string
}
