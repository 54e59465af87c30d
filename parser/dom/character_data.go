package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

func (c *CharacterData) replaceData(data string) {
	c.Data = data
	c.Length = len(data)
}
